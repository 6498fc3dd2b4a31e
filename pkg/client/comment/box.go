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

package comment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/tastebook/internal/pkg/optimistic"
	"github.com/ecodeclub/tastebook/pkg/client/api"
	"github.com/ecodeclub/tastebook/pkg/client/auth"
	"github.com/ecodeclub/tastebook/pkg/client/httpx"
	"github.com/ecodeclub/tastebook/pkg/client/notify"
	"github.com/lithammer/shortuuid/v4"
)

const (
	DefaultMaxLength = 500
	defaultPageSize  = 20
	pendingPrefix    = "tmp-"
)

var (
	ErrEmptyComment   = errors.New("评论内容不能为空")
	ErrCommentTooLong = errors.New("评论内容过长")
	ErrCoolingDown    = errors.New("发表太快了，请稍后再试")
)

// ValidationError 在输入框下面直接展示，不会发请求
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RejectedError 服务端拒绝了这条评论
type RejectedError struct {
	Outcome api.Outcome
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("评论被拒绝: %s %s", e.Outcome.Reason, e.Outcome.Msg)
}

//go:generate mockgen -source=./box.go -package=commentmocks -destination=./mocks/box.mock.go Remote
type Remote interface {
	PostComment(ctx context.Context, in api.CommentInput) (api.Outcome, error)
	FetchCommentReplies(ctx context.Context, ancestorID, maxID int64, limit int) (api.CommentList, error)
}

// Reply 回复列表里的一项。Optimistic 为 true 的是还没有得到服务端确认的
type Reply struct {
	ID         string
	Content    string
	User       api.User
	ParentID   int64
	Utime      int64
	Optimistic bool
}

func fromAPI(c api.Comment) Reply {
	return Reply{
		ID:       strconv.FormatInt(c.ID, 10),
		Content:  c.Content,
		User:     c.User,
		ParentID: c.ParentID,
		Utime:    c.Utime,
	}
}

// Target 评论的对象。回复某条评论的时候 ParentID 和 AncestorID 不为 0
type Target struct {
	Biz        string
	BizID      int64
	ParentID   int64
	AncestorID int64
}

type Config struct {
	MaxLength int
	// 发表成功之后的冷却时间
	Cooldown time.Duration
	// 被限流之后的冷却时间
	RateLimitCooldown time.Duration
	PageSize          int
}

// Box 评论输入框和它下面的回复列表
type Box struct {
	target   Target
	remote   Remote
	sess     auth.Authenticator
	prompter auth.Prompter
	notifier notify.Notifier
	cooldown *Cooldown
	cfg      Config
	guard    *optimistic.Guard[Target]

	mu      sync.RWMutex
	input   string
	replies []Reply
}

func NewBox(target Target, remote Remote, sess auth.Authenticator,
	prompter auth.Prompter, notifier notify.Notifier, cooldown *Cooldown, cfg Config) *Box {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = ShortCooldown
	}
	if cfg.RateLimitCooldown <= 0 {
		cfg.RateLimitCooldown = LongCooldown
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cooldown == nil {
		cooldown = NewCooldown()
	}
	return &Box{
		target:   target,
		remote:   remote,
		sess:     sess,
		prompter: prompter,
		notifier: notifier,
		cooldown: cooldown,
		cfg:      cfg,
		guard:    optimistic.NewGuard[Target](),
	}
}

func (b *Box) SetInput(text string) {
	b.mu.Lock()
	b.input = text
	b.mu.Unlock()
}

func (b *Box) Input() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.input
}

func (b *Box) Replies() []Reply {
	b.mu.RLock()
	defer b.mu.RUnlock()
	res := make([]Reply, len(b.replies))
	copy(res, b.replies)
	return res
}

func (b *Box) Cooldown() *Cooldown {
	return b.cooldown
}

// Placeholder 冷却中展示剩余秒数
func (b *Box) Placeholder() string {
	if left := b.cooldown.Remaining(); left > 0 {
		return fmt.Sprintf("请等待 %d 秒后再发表", left)
	}
	if b.target.ParentID > 0 {
		return "写下你的回复"
	}
	return "写下你的评论"
}

// Load 拉取服务端的回复列表，还没确认的回复保留在最前面
func (b *Box) Load(ctx context.Context) error {
	list, err := b.remote.FetchCommentReplies(ctx, b.ancestorID(), 0, b.cfg.PageSize)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.replies = merge(pendingOf(b.replies), list.List)
	b.mu.Unlock()
	return nil
}

// Submit 发表评论。
// 校验不通过返回 *ValidationError，不会发请求；
// 通过之后立刻在列表最前面插入一条临时回复并清空输入框，
// 服务端接受之后用服务端的列表替换，拒绝或者失败就删掉这条临时回复。
// 同一个输入框上一次提交还没有结束的时候返回 optimistic.ErrInFlight
func (b *Box) Submit(ctx context.Context, text string) error {
	u := b.sess.Current()
	if u == nil {
		b.prompter.PromptSignIn()
		return auth.ErrUnauthenticated
	}
	content := strings.TrimSpace(text)
	switch {
	case content == "":
		return &ValidationError{Err: ErrEmptyComment}
	case utf8.RuneCountInString(content) > b.cfg.MaxLength:
		return &ValidationError{Err: ErrCommentTooLong}
	case b.cooldown.Remaining() > 0:
		return &ValidationError{Err: ErrCoolingDown}
	}
	// 上一条还没有返回
	if !b.guard.TryAcquire(b.target) {
		return optimistic.ErrInFlight
	}
	defer b.guard.Release(b.target)

	var pending Reply
	cmd := optimistic.Command[Reply, api.Outcome]{
		Apply: func() Reply {
			pending = Reply{
				ID:         pendingPrefix + shortuuid.New(),
				Content:    content,
				User:       api.User{ID: u.ID, Nickname: u.Nickname},
				ParentID:   b.target.ParentID,
				Utime:      time.Now().UnixMilli(),
				Optimistic: true,
			}
			b.mu.Lock()
			b.replies = append([]Reply{pending}, b.replies...)
			b.input = ""
			b.mu.Unlock()
			return pending
		},
		Remote: func(ctx context.Context, pending Reply) (api.Outcome, error) {
			out, err := b.remote.PostComment(ctx, api.CommentInput{
				Biz:      b.target.Biz,
				BizID:    b.target.BizID,
				ParentID: b.target.ParentID,
				Content:  pending.Content,
			})
			if err != nil {
				return out, err
			}
			if !out.Accepted {
				return out, &RejectedError{Outcome: out}
			}
			return out, nil
		},
		Commit: func(out api.Outcome) {
			b.confirm(ctx, pending, out)
		},
		Revert: func(pending Reply, err error) {
			b.remove(pending.ID)
			b.fail(err)
		},
	}
	_, err := cmd.Run(ctx)
	return err
}

// confirm 服务端已经接受，重新拉取列表
func (b *Box) confirm(ctx context.Context, pending Reply, out api.Outcome) {
	b.cooldown.Start(b.cfg.Cooldown)
	list, err := b.remote.FetchCommentReplies(ctx, b.ancestorID(), 0, b.cfg.PageSize)
	b.mu.Lock()
	defer b.mu.Unlock()
	others := pendingOf(without(b.replies, pending.ID))
	if err != nil {
		// 拉取失败，就地把临时回复换成正式的
		confirmed := pending
		confirmed.Optimistic = false
		if out.ID > 0 {
			confirmed.ID = strconv.FormatInt(out.ID, 10)
		}
		b.replies = replace(b.replies, pending.ID, confirmed)
		return
	}
	b.replies = merge(others, list.List)
}

func (b *Box) fail(err error) {
	var rejected *RejectedError
	switch {
	case errors.As(err, &rejected):
		switch rejected.Outcome.Reason {
		case api.ReasonDuplicate:
			b.notifier.Error(notify.MsgDuplicate)
		case api.ReasonRateLimited:
			b.cooldown.Start(b.cfg.RateLimitCooldown)
			b.notifier.Error(notify.MsgRateLimited)
		case api.ReasonInvalid:
			if rejected.Outcome.Msg != "" {
				b.notifier.Error(rejected.Outcome.Msg)
				return
			}
			b.notifier.Error(notify.MsgGeneric)
		default:
			b.notifier.Error(notify.MsgGeneric)
		}
	case errors.Is(err, httpx.ErrSessionTerminated):
	default:
		b.notifier.Error(notify.MsgGeneric)
	}
}

func (b *Box) remove(id string) {
	b.mu.Lock()
	b.replies = without(b.replies, id)
	b.mu.Unlock()
}

func (b *Box) ancestorID() int64 {
	if b.target.AncestorID > 0 {
		return b.target.AncestorID
	}
	return b.target.ParentID
}

func without(replies []Reply, id string) []Reply {
	res := make([]Reply, 0, len(replies))
	for _, r := range replies {
		if r.ID != id {
			res = append(res, r)
		}
	}
	return res
}

func replace(replies []Reply, id string, r Reply) []Reply {
	res := make([]Reply, len(replies))
	for i, old := range replies {
		if old.ID == id {
			res[i] = r
			continue
		}
		res[i] = old
	}
	return res
}

func pendingOf(replies []Reply) []Reply {
	res := make([]Reply, 0, len(replies))
	for _, r := range replies {
		if r.Optimistic {
			res = append(res, r)
		}
	}
	return res
}

// merge 未确认的回复在前，服务端的在后，按照 ID 去重
func merge(pending []Reply, fetched []api.Comment) []Reply {
	res := make([]Reply, 0, len(pending)+len(fetched))
	seen := make(map[string]struct{}, cap(res))
	for _, r := range pending {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		res = append(res, r)
	}
	for _, c := range fetched {
		r := fromAPI(c)
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		res = append(res, r)
	}
	return res
}
