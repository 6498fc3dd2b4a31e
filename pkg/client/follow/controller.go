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

package follow

import (
	"context"
	"errors"

	"github.com/ecodeclub/tastebook/internal/pkg/optimistic"
	"github.com/ecodeclub/tastebook/pkg/client/auth"
	"github.com/ecodeclub/tastebook/pkg/client/httpx"
	"github.com/ecodeclub/tastebook/pkg/client/notify"
)

// ErrSelfFollow 不能关注自己，也不能关注一个不存在的用户
var ErrSelfFollow = errors.New("不能关注自己")

//go:generate mockgen -source=./controller.go -package=followmocks -destination=./mocks/controller.mock.go Remote
type Remote interface {
	FollowUser(ctx context.Context, uid int64) error
	UnfollowUser(ctx context.Context, uid int64) error
	IsFollowingUser(ctx context.Context, uid int64) (bool, error)
}

type Controller struct {
	remote   Remote
	registry *Registry
	lists    *ListCache
	sess     auth.Authenticator
	prompter auth.Prompter
	notifier notify.Notifier
	guard    *optimistic.Guard[int64]
}

func NewController(remote Remote, registry *Registry, lists *ListCache,
	sess auth.Authenticator, prompter auth.Prompter, notifier notify.Notifier) *Controller {
	return &Controller{
		remote:   remote,
		registry: registry,
		lists:    lists,
		sess:     sess,
		prompter: prompter,
		notifier: notifier,
		guard:    optimistic.NewGuard[int64](),
	}
}

// CanFollow 自己的主页上不展示关注按钮
func CanFollow(actor *auth.User, targetID int64) bool {
	return actor != nil && targetID > 0 && actor.ID != targetID
}

// SetFollow 关注或者取消关注 targetID，返回最终的关注状态。
// 所有展示 targetID 的地方立刻看到新状态，失败之后统一改回去
func (c *Controller) SetFollow(ctx context.Context, targetID int64, desired bool) (bool, error) {
	u := c.sess.Current()
	if u == nil {
		c.prompter.PromptSignIn()
		return false, auth.ErrUnauthenticated
	}
	if !CanFollow(u, targetID) {
		return false, ErrSelfFollow
	}
	if !c.guard.TryAcquire(targetID) {
		following, _ := c.registry.Get(targetID)
		return following, optimistic.ErrInFlight
	}
	defer c.guard.Release(targetID)

	cmd := optimistic.Command[bool, struct{}]{
		Apply: func() bool {
			prev, _ := c.registry.Get(targetID)
			c.registry.Set(targetID, desired)
			return prev
		},
		Remote: func(ctx context.Context, _ bool) (struct{}, error) {
			if desired {
				return struct{}{}, c.remote.FollowUser(ctx, targetID)
			}
			return struct{}{}, c.remote.UnfollowUser(ctx, targetID)
		},
		Commit: func(struct{}) {
			c.lists.Invalidate(u.ID)
			c.lists.Invalidate(targetID)
		},
		Revert: func(_ bool, err error) {
			c.registry.Set(targetID, !desired)
			if !errors.Is(err, httpx.ErrSessionTerminated) {
				c.notifier.Error(notify.MsgGeneric)
			}
		},
	}
	_, err := cmd.Run(ctx)
	following, _ := c.registry.Get(targetID)
	return following, err
}

// Toggle 根据当前状态取反
func (c *Controller) Toggle(ctx context.Context, targetID int64) (bool, error) {
	following, _ := c.registry.Get(targetID)
	return c.SetFollow(ctx, targetID, !following)
}

// Load 第一次展示某个作者的时候调用，已经知道状态就不再请求
func (c *Controller) Load(ctx context.Context, targetID int64) (bool, error) {
	if following, ok := c.registry.Get(targetID); ok {
		return following, nil
	}
	u := c.sess.Current()
	if !CanFollow(u, targetID) {
		return false, nil
	}
	following, err := c.remote.IsFollowingUser(ctx, targetID)
	if err != nil {
		return false, err
	}
	// 查询期间用户点了关注，以用户的操作为准
	if cur, ok := c.registry.Get(targetID); ok || c.guard.Busy(targetID) {
		return cur, nil
	}
	c.registry.Set(targetID, following)
	return following, nil
}

// ResetOnSignOut 退出登录的时候清空关注状态和列表快照
func ResetOnSignOut(sess *auth.Session, registry *Registry, lists *ListCache) {
	sess.OnSignOut(func(bool) {
		registry.Reset()
		lists.Purge()
	})
}
