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

package like

import (
	"context"
	"errors"
	"sync"

	"github.com/ecodeclub/tastebook/internal/pkg/optimistic"
	"github.com/ecodeclub/tastebook/pkg/client/api"
	"github.com/ecodeclub/tastebook/pkg/client/auth"
	"github.com/ecodeclub/tastebook/pkg/client/httpx"
	"github.com/ecodeclub/tastebook/pkg/client/notify"
)

// Liker 点赞和取消点赞的远程调用
//
//go:generate mockgen -source=./button.go -package=likemocks -destination=./mocks/liker.mock.go Liker
type Liker interface {
	Like(ctx context.Context, id int64) (api.LikeResult, error)
	Unlike(ctx context.Context, id int64) (api.LikeResult, error)
}

type State struct {
	Liked bool
	Count int64
}

// Button 一篇点评或者一条评论上的点赞按钮
type Button struct {
	id       int64
	liker    Liker
	sess     auth.Authenticator
	prompter auth.Prompter
	notifier notify.Notifier
	guard    *optimistic.Guard[int64]

	mu        sync.RWMutex
	state     State
	observers []func(State)
}

type Option func(b *Button)

// WithGuard 同一个对象的多个按钮共用一个 guard
func WithGuard(g *optimistic.Guard[int64]) Option {
	return func(b *Button) {
		b.guard = g
	}
}

func NewButton(id int64, initial State, liker Liker,
	sess auth.Authenticator, prompter auth.Prompter, notifier notify.Notifier, opts ...Option) *Button {
	if initial.Count < 0 {
		initial.Count = 0
	}
	b := &Button{
		id:       id,
		liker:    liker,
		sess:     sess,
		prompter: prompter,
		notifier: notifier,
		guard:    optimistic.NewGuard[int64](),
		state:    initial,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Button) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// OnChange 每一次状态变化都会回调，包括乐观更新和回滚
func (b *Button) OnChange(fn func(State)) {
	b.mu.Lock()
	b.observers = append(b.observers, fn)
	b.mu.Unlock()
}

// Toggle 点赞或者取消点赞。
// 本地状态立刻翻转，成功之后以服务端返回为准，失败则恢复并提示
func (b *Button) Toggle(ctx context.Context) error {
	if b.sess.Current() == nil {
		b.prompter.PromptSignIn()
		return auth.ErrUnauthenticated
	}
	if !b.guard.TryAcquire(b.id) {
		return optimistic.ErrInFlight
	}
	defer b.guard.Release(b.id)

	cmd := optimistic.Command[State, api.LikeResult]{
		Apply: func() State {
			b.mu.Lock()
			old := b.state
			b.state = flip(old)
			b.mu.Unlock()
			b.notify()
			return old
		},
		Remote: func(ctx context.Context, snapshot State) (api.LikeResult, error) {
			if snapshot.Liked {
				return b.liker.Unlike(ctx, b.id)
			}
			return b.liker.Like(ctx, b.id)
		},
		Commit: func(res api.LikeResult) {
			b.set(State{Liked: res.UserLiked, Count: max(res.LikesCount, 0)})
		},
		Revert: func(snapshot State, err error) {
			b.set(snapshot)
			if !errors.Is(err, httpx.ErrSessionTerminated) {
				b.notifier.Error(notify.MsgGeneric)
			}
		},
	}
	_, err := cmd.Run(ctx)
	return err
}

func (b *Button) set(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
	b.notify()
}

func (b *Button) notify() {
	b.mu.RLock()
	s := b.state
	observers := make([]func(State), len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()
	for _, fn := range observers {
		fn(s)
	}
}

func flip(s State) State {
	if s.Liked {
		return State{Liked: false, Count: max(s.Count-1, 0)}
	}
	return State{Liked: true, Count: s.Count + 1}
}

type reviewLiker struct {
	a *api.ReviewAPI
}

// ForReview 点评的点赞
func ForReview(a *api.ReviewAPI) Liker {
	return reviewLiker{a: a}
}

func (r reviewLiker) Like(ctx context.Context, id int64) (api.LikeResult, error) {
	return r.a.LikeReview(ctx, id)
}

func (r reviewLiker) Unlike(ctx context.Context, id int64) (api.LikeResult, error) {
	return r.a.UnlikeReview(ctx, id)
}

type commentLiker struct {
	a *api.ReviewAPI
}

// ForComment 评论的点赞
func ForComment(a *api.ReviewAPI) Liker {
	return commentLiker{a: a}
}

func (c commentLiker) Like(ctx context.Context, id int64) (api.LikeResult, error) {
	return c.a.LikeComment(ctx, id)
}

func (c commentLiker) Unlike(ctx context.Context, id int64) (api.LikeResult, error) {
	return c.a.UnlikeComment(ctx, id)
}
