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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/service"
	"github.com/gin-gonic/gin"
)

const maxBatchSize = 100

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.InteractiveService
}

func NewHandler(svc service.InteractiveService) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes 这边我们直接让前端来控制 biz 和 biz_id，简化实现
// 这算是一种反范式的设计和实现方式
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/like", ginx.BS[LikeReq](h.Like))
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
	g.POST("/cnt/batch", ginx.BS[BatchGetCntReq](h.BatchGetCnt))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Like(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	if req.Biz == "" || req.BizId <= 0 {
		return invalidInputResult, nil
	}
	intr, err := h.svc.Like(ctx, req.Biz, req.BizId, sess.Claims().Uid, req.Liked)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LikeResp{
			Liked:   intr.Liked,
			LikeCnt: intr.LikeCnt,
		},
	}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	if req.Biz == "" || req.BizId <= 0 {
		return invalidInputResult, nil
	}
	intr, err := h.svc.Get(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newInteractive(intr),
	}, nil
}

func (h *Handler) BatchGetCnt(ctx *ginx.Context, req BatchGetCntReq, sess session.Session) (ginx.Result, error) {
	if req.Biz == "" || len(req.BizIds) == 0 || len(req.BizIds) > maxBatchSize {
		return invalidInputResult, nil
	}
	intrs, err := h.svc.GetByIds(ctx, req.Biz, sess.Claims().Uid, req.BizIds)
	if err != nil {
		return systemErrorResult, err
	}
	res := make(map[int64]Interactive, len(intrs))
	for id, intr := range intrs {
		res[id] = newInteractive(intr)
	}
	return ginx.Result{
		Data: BatchGetCntResp{InteractiveMap: res},
	}, nil
}
