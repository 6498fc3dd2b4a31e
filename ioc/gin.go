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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/comment"
	"github.com/ecodeclub/tastebook/internal/follow"
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/pkg/middleware"
	"github.com/ecodeclub/tastebook/internal/review"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	usrHdl *user.Handler,
	intrHdl *interactive.Handler,
	followHdl *follow.Handler,
	commentHdl *comment.Handler,
	reviewHdl *review.Hdl,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "tastebook.cn")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("tastebook", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	usrHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	followHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	reviewHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(middleware.NewCheckLoginMiddlewareBuilder(sp, user.InvalidTokenCode).Build())
	usrHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	followHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	reviewHdl.PrivateRoutes(res.Engine)
	return res
}
