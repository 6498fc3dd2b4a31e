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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

var errNoSession = errors.New("测试: 上下文里面没有 session")

// 集成测试统一使用内存 session，由测试自己的中间件放进上下文
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

// NewSession 登录接口会调用，直接放进上下文
func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(session.CtxSessionKey, sess)
	return sess, nil
}

// Get 公开接口允许没有 session
func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(session.CtxSessionKey)
	if !ok {
		return nil, errNoSession
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errNoSession
	}
	return sess, nil
}
