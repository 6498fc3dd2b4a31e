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

package auth

import (
	"errors"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

// ErrUnauthenticated 操作需要先登录
var ErrUnauthenticated = errors.New("未登录")

type User struct {
	ID          int64
	Nickname    string
	AccessToken string
}

// Prompter 未登录的时候引导用户去登录
type Prompter interface {
	PromptSignIn()
}

type PrompterFunc func()

func (f PrompterFunc) PromptSignIn() {
	f()
}

// Authenticator 只读的登录态
type Authenticator interface {
	Current() *User
}

// Session 当前登录的用户。退出登录的时候依次执行注册的钩子
type Session struct {
	mu    sync.RWMutex
	user  *User
	hooks []func(forced bool)
}

func NewSession() *Session {
	return &Session{}
}

// Current 未登录返回 nil
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.AccessToken
}

func (s *Session) SignIn(u User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// OnSignOut 注册退出登录的钩子，forced 表示是服务端强制下线
func (s *Session) OnSignOut(hook func(forced bool)) {
	s.mu.Lock()
	s.hooks = append(s.hooks, hook)
	s.mu.Unlock()
}

func (s *Session) SignOut() {
	s.signOut(false)
}

// ForceSignOut token 失效，清理登录态
func (s *Session) ForceSignOut() {
	s.signOut(true)
}

func (s *Session) signOut(forced bool) {
	s.mu.Lock()
	u := s.user
	s.user = nil
	hooks := make([]func(bool), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()
	if u != nil && forced {
		elog.DefaultLogger.Warn("登录态失效，强制退出", elog.Int64("uid", u.ID))
	}
	for _, hook := range hooks {
		hook(forced)
	}
}
