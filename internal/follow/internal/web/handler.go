package web

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/ecodeclub/tastebook/internal/follow/internal/service"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.FollowService
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(svc service.FollowService, userSvc user.UserService) *Handler {
	return &Handler{
		svc:     svc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/follow")
	g.POST("/follow", ginx.BS[FollowReq](h.Follow))
	g.POST("/unfollow", ginx.BS[FollowReq](h.Unfollow))
	g.POST("/status", ginx.BS[FollowReq](h.Status))
}

// PublicRoutes 别人的关注列表和粉丝列表不登录也能看
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/follow")
	g.POST("/followers", ginx.B[ListReq](h.Followers))
	g.POST("/followees", ginx.B[ListReq](h.Followees))
	g.POST("/statistic", ginx.B[StatisticReq](h.Statistic))
}

func (h *Handler) Follow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	return h.mutate(ctx, req, sess, h.svc.Follow)
}

func (h *Handler) Unfollow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	return h.mutate(ctx, req, sess, h.svc.Unfollow)
}

func (h *Handler) mutate(ctx *ginx.Context, req FollowReq, sess session.Session,
	fn func(ctx context.Context, follower, followee int64) error) (ginx.Result, error) {
	if req.Followee <= 0 {
		return invalidInputResult, nil
	}
	err := fn(ctx, sess.Claims().Uid, req.Followee)
	switch {
	case errors.Is(err, service.ErrFollowSelf):
		return followSelfResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Status(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	following, followedBy, err := h.svc.Status(ctx, sess.Claims().Uid, req.Followee)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatusResp{Following: following, FollowedBy: followedBy},
	}, nil
}

func (h *Handler) Followers(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Uid <= 0 {
		return invalidInputResult, nil
	}
	rs, hasMore, err := h.svc.FollowerList(ctx, req.Uid, req.MaxId, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	// 粉丝列表展示的是关注我的人
	return h.toListResult(ctx, rs, hasMore, func(r domain.FollowRelation) int64 {
		return r.Follower
	}), nil
}

func (h *Handler) Followees(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Uid <= 0 {
		return invalidInputResult, nil
	}
	rs, hasMore, err := h.svc.FolloweeList(ctx, req.Uid, req.MaxId, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return h.toListResult(ctx, rs, hasMore, func(r domain.FollowRelation) int64 {
		return r.Followee
	}), nil
}

func (h *Handler) Statistic(ctx *ginx.Context, req StatisticReq) (ginx.Result, error) {
	s, err := h.svc.Statistic(ctx, req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Statistic{Followers: s.Followers, Followees: s.Followees},
	}, nil
}

func (h *Handler) limit(l int) int {
	if l <= 0 {
		return defaultLimit
	}
	return min(l, maxLimit)
}

// toListResult 昵称和头像查不到的时候只返回 uid，不影响列表本身
func (h *Handler) toListResult(ctx context.Context, rs []domain.FollowRelation, hasMore bool,
	other func(r domain.FollowRelation) int64) ginx.Result {
	uids := slice.Map(rs, func(idx int, src domain.FollowRelation) int64 {
		return other(src)
	})
	profiles := map[int64]user.User{}
	if len(uids) > 0 {
		var err error
		profiles, err = h.userSvc.BatchProfile(ctx, uids)
		if err != nil {
			h.logger.Error("查询用户信息失败", elog.FieldErr(err))
		}
	}
	resp := ListResp{
		List: slice.Map(rs, func(idx int, src domain.FollowRelation) FollowUser {
			uid := other(src)
			u := profiles[uid]
			return FollowUser{
				FollowId: src.Id,
				Uid:      uid,
				Nickname: u.Nickname,
				Avatar:   u.Avatar,
			}
		}),
		HasMore: hasMore,
	}
	if len(rs) > 0 {
		resp.NextCursor = rs[len(rs)-1].Id
	}
	return ginx.Result{Data: resp}
}
