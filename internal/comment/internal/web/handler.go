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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/comment/internal/domain"
	"github.com/ecodeclub/tastebook/internal/comment/internal/errs"
	"github.com/ecodeclub/tastebook/internal/comment/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/", ginx.BS[CreateRequest](h.Create))
	group.POST("/delete", ginx.BS[DeleteRequest](h.Delete))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	// 查询直接（始祖）评论，按照评论时间的倒序排序
	group.POST("/list", ginx.B[ListRequest](h.List))
	// 获得某个直接（始祖）评论的所有子评论，孙子评论，按照评论时间倒序排序（即后评论的在前面）
	group.POST("/replies", ginx.B[RepliesRequest](h.Replies))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	if req.Comment.Biz == "" || req.Comment.BizID <= 0 {
		return result(errs.InvalidContent), nil
	}
	id, err := h.svc.Create(ctx.Request.Context(),
		domain.Comment{
			User: domain.User{
				ID: sess.Claims().Uid,
			},
			Biz:      req.Comment.Biz,
			BizID:    req.Comment.BizID,
			ParentID: req.Comment.ParentID,
			Content:  req.Comment.Content,
		})
	switch {
	case errors.Is(err, service.ErrInvalidContent):
		return result(errs.InvalidContent), nil
	case errors.Is(err, service.ErrDuplicateComment):
		return result(errs.DuplicateComment), nil
	case errors.Is(err, service.ErrCommentTooFrequent):
		return result(errs.CommentTooFrequent), nil
	case errors.Is(err, service.ErrInvalidParentID):
		return result(errs.CommentNotFound), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateResponse{
			ID:     id,
			Status: domain.StatusApproved,
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Biz, req.BizID, req.MaxID, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找%q业务的%d资源的直接评论（始祖评论）失败: %w", req.Biz, req.BizID, err)
	}
	return ginx.Result{
		Data: h.toList(page),
	}, nil
}

func (h *Handler) Replies(ctx *ginx.Context, req RepliesRequest) (ginx.Result, error) {
	page, err := h.svc.Replies(ctx.Request.Context(), req.AncestorID, req.MaxID, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找评论ID=%d的后裔评论失败: %w", req.AncestorID, err)
	}
	return ginx.Result{
		Data: h.toList(page),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteRequest, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		return result(errs.CommentNotFound), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) limit(l int) int {
	if l <= 0 {
		return defaultLimit
	}
	return min(l, maxLimit)
}

func (h *Handler) toList(page domain.Page) CommentList {
	return CommentList{
		List: slice.Map(page.Comments, func(_ int, src domain.Comment) Comment {
			return h.toVO(src)
		}),
		Total:   page.Total,
		HasMore: page.HasMore,
	}
}

func (h *Handler) toVO(c domain.Comment) Comment {
	return Comment{
		ID: c.ID,
		User: User{
			ID:       c.User.ID,
			Nickname: c.User.NickName,
			Avatar:   c.User.Avatar,
		},
		Biz:        c.Biz,
		BizID:      c.BizID,
		ParentID:   c.ParentID,
		AncestorID: c.AncestorID,
		Content:    c.Content,
		Utime:      c.Utime,
		Replies: slice.Map(c.Replies, func(_ int, src domain.Comment) Comment {
			return h.toVO(src)
		}),
	}
}
