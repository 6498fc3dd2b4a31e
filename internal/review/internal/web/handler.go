// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
	"github.com/ecodeclub/tastebook/internal/review/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.ReviewSvc
	intrSvc interactive.Service
	logger  *elog.Component
	sp      session.Provider
}

func NewHandler(svc service.ReviewSvc, intrSvc interactive.Service, sp session.Provider) *Handler {
	return &Handler{
		svc:     svc,
		intrSvc: intrSvc,
		logger:  elog.DefaultLogger,
		sp:      sp,
	}
}

func (h *Handler) getUid(gctx *ginx.Context) int64 {
	sess, err := h.sp.Get(gctx)
	if err != nil || sess == nil {
		// 没登录
		return 0
	}
	return sess.Claims().Uid
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/review/list", ginx.B[ListReq](h.List))
	server.POST("/review/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/review/save", ginx.BS[SaveReq](h.Save))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidReview):
		return invalidReviewResult, nil
	case errors.Is(err, service.ErrReviewNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Uid <= 0 && req.RestaurantID <= 0 {
		return invalidReviewResult, nil
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	page, err := h.svc.List(ctx, domain.ListQuery{
		Uid:          req.Uid,
		RestaurantID: req.RestaurantID,
		Offset:       max(req.Offset, 0),
		Limit:        min(limit, maxLimit),
	})
	if err != nil {
		return systemErrorResult, err
	}
	intrs := map[int64]interactive.Interactive{}
	if len(page.Reviews) > 0 {
		ids := slice.Map(page.Reviews, func(idx int, src domain.Review) int64 {
			return src.ID
		})
		var err1 error
		intrs, err1 = h.intrSvc.GetByIds(ctx, domain.ReviewBiz, h.getUid(ctx), ids)
		// 这个数据查询不到也不需要担心
		if err1 != nil {
			h.logger.Error("查询点评的点赞数据失败",
				elog.Any("ids", ids),
				elog.FieldErr(err1))
		}
	}
	list := slice.Map(page.Reviews, func(idx int, src domain.Review) Review {
		return newReviewWithInteractive(src, intrs[src.ID])
	})
	return ginx.Result{
		Data: ReviewListResp{
			Total:   page.Total,
			List:    list,
			HasMore: page.HasMore,
		},
	}, nil
}

// Detail 点评详情，登录的时候带上自己有没有点赞
func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	uid := h.getUid(ctx)
	review, err := h.svc.Detail(ctx, req.ID, uid)
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}

	intr, err := h.intrSvc.Get(ctx, domain.ReviewBiz, req.ID, uid)
	// 这个数据查询不到也不需要担心
	if err != nil {
		h.logger.Error("查询点评的点赞数据失败",
			elog.Int64("id", req.ID),
			elog.FieldErr(err))
	}
	return ginx.Result{
		Data: newReviewWithInteractive(review, intr),
	}, nil
}
