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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckLoginMiddlewareBuilder 没有登录或者登录态失效的时候返回
// 401 和 invalidCode，客户端据此强制退出登录
type CheckLoginMiddlewareBuilder struct {
	sp          session.Provider
	invalidCode int
	logger      *elog.Component
}

func NewCheckLoginMiddlewareBuilder(sp session.Provider, invalidCode int) *CheckLoginMiddlewareBuilder {
	return &CheckLoginMiddlewareBuilder{
		sp:          sp,
		invalidCode: invalidCode,
		logger:      elog.DefaultLogger,
	}
}

func (c *CheckLoginMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil || sess == nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err), elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: c.invalidCode,
				Msg:  "登录已失效",
			})
			return
		}
	}
}
