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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/tastebook/internal/pkg/optimistic"
	"github.com/ecodeclub/tastebook/pkg/client/api"
	"github.com/ecodeclub/tastebook/pkg/client/auth"
	commentmocks "github.com/ecodeclub/tastebook/pkg/client/comment/mocks"
	"github.com/ecodeclub/tastebook/pkg/client/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type prompter struct {
	cnt int
}

func (p *prompter) PromptSignIn() {
	p.cnt++
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func signedIn() *auth.Session {
	s := auth.NewSession()
	s.SignIn(auth.User{ID: 1, Nickname: "小明", AccessToken: "token"})
	return s
}

var target = Target{Biz: api.BizReview, BizID: 10, ParentID: 100, AncestorID: 100}

func TestBox_Submit(t *testing.T) {
	existing := api.Comment{ID: 5, Content: "旧的回复"}
	testCases := []struct {
		name         string
		mock         func(ctrl *gomock.Controller) Remote
		sess         *auth.Session
		text         string
		wantErr      func(t *testing.T, err error)
		wantIDs      []string
		wantInput    string
		wantToasts   []string
		wantCooldown int
		wantPrompt   int
	}{
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) Remote {
				return commentmocks.NewMockRemote(ctrl)
			},
			sess: auth.NewSession(),
			text: "好吃",
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrUnauthenticated)
			},
			wantIDs:    []string{"5"},
			wantInput:  "好吃",
			wantPrompt: 1,
		},
		{
			name: "空内容",
			mock: func(ctrl *gomock.Controller) Remote {
				return commentmocks.NewMockRemote(ctrl)
			},
			sess: signedIn(),
			text: "   \n",
			wantErr: func(t *testing.T, err error) {
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.ErrorIs(t, err, ErrEmptyComment)
			},
			wantIDs:   []string{"5"},
			wantInput: "   \n",
		},
		{
			name: "内容过长",
			mock: func(ctrl *gomock.Controller) Remote {
				return commentmocks.NewMockRemote(ctrl)
			},
			sess: signedIn(),
			text: strings.Repeat("好", DefaultMaxLength+1),
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrCommentTooLong)
			},
			wantIDs:   []string{"5"},
			wantInput: strings.Repeat("好", DefaultMaxLength+1),
		},
		{
			name: "发表成功",
			mock: func(ctrl *gomock.Controller) Remote {
				remote := commentmocks.NewMockRemote(ctrl)
				remote.EXPECT().PostComment(gomock.Any(), api.CommentInput{
					Biz:      api.BizReview,
					BizID:    10,
					ParentID: 100,
					Content:  "好吃",
				}).Return(api.Accepted(6), nil)
				remote.EXPECT().FetchCommentReplies(gomock.Any(), int64(100), int64(0), defaultPageSize).
					Return(api.CommentList{List: []api.Comment{{ID: 6, Content: "好吃"}, existing}}, nil)
				return remote
			},
			sess: signedIn(),
			text: " 好吃 ",
			wantErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			wantIDs:      []string{"6", "5"},
			wantCooldown: 5,
		},
		{
			name: "重复评论",
			mock: func(ctrl *gomock.Controller) Remote {
				remote := commentmocks.NewMockRemote(ctrl)
				remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
					Return(api.Rejected(api.ReasonDuplicate, ""), nil)
				return remote
			},
			sess: signedIn(),
			text: "好吃",
			wantErr: func(t *testing.T, err error) {
				var re *RejectedError
				require.True(t, errors.As(err, &re))
				assert.Equal(t, api.ReasonDuplicate, re.Outcome.Reason)
			},
			wantIDs:    []string{"5"},
			wantToasts: []string{notify.MsgDuplicate},
		},
		{
			name: "过于频繁",
			mock: func(ctrl *gomock.Controller) Remote {
				remote := commentmocks.NewMockRemote(ctrl)
				remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
					Return(api.Rejected(api.ReasonRateLimited, ""), nil)
				return remote
			},
			sess: signedIn(),
			text: "好吃",
			wantErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			wantIDs:      []string{"5"},
			wantToasts:   []string{notify.MsgRateLimited},
			wantCooldown: 30,
		},
		{
			name: "网络错误",
			mock: func(ctrl *gomock.Controller) Remote {
				remote := commentmocks.NewMockRemote(ctrl)
				remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
					Return(api.Outcome{}, errors.New("network"))
				return remote
			},
			sess: signedIn(),
			text: "好吃",
			wantErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			wantIDs:    []string{"5"},
			wantToasts: []string{notify.MsgGeneric},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := &clock{now: time.Unix(1000, 0)}
			p := &prompter{}
			rec := &notify.Recorder{}
			b := NewBox(target, tc.mock(ctrl), tc.sess, p, rec, newCooldownWithClock(c.Now), Config{})
			b.replies = []Reply{fromAPI(existing)}
			b.SetInput(tc.text)
			err := b.Submit(context.Background(), tc.text)
			tc.wantErr(t, err)
			ids := make([]string, 0, len(b.Replies()))
			for _, r := range b.Replies() {
				ids = append(ids, r.ID)
				assert.False(t, r.Optimistic)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantInput, b.Input())
			assert.Equal(t, tc.wantToasts, rec.Errors())
			assert.Equal(t, tc.wantCooldown, b.Cooldown().Remaining())
			assert.Equal(t, tc.wantPrompt, p.cnt)
		})
	}
}

func TestBox_PendingVisibleDuringRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	b := NewBox(target, remote, signedIn(), &prompter{}, &notify.Recorder{}, nil, Config{})
	b.SetInput("好吃")
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in api.CommentInput) (api.Outcome, error) {
			replies := b.Replies()
			require.Len(t, replies, 1)
			assert.True(t, replies[0].Optimistic)
			assert.True(t, strings.HasPrefix(replies[0].ID, "tmp-"))
			assert.Equal(t, "好吃", replies[0].Content)
			assert.Equal(t, "", b.Input())
			return api.Outcome{}, errors.New("network")
		})
	assert.Error(t, b.Submit(context.Background(), "好吃"))
	assert.Empty(t, b.Replies())
	// 失败之后输入框依旧是空的
	assert.Equal(t, "", b.Input())
}

// 连续点击两次发表，只会发一次请求
func TestBox_SubmitInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	rec := &notify.Recorder{}
	b := NewBox(target, remote, signedIn(), &prompter{}, rec, nil, Config{})
	var nested error
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in api.CommentInput) (api.Outcome, error) {
			nested = b.Submit(context.Background(), "好吃")
			return api.Accepted(6), nil
		}).Times(1)
	remote.EXPECT().FetchCommentReplies(gomock.Any(), int64(100), int64(0), defaultPageSize).
		Return(api.CommentList{List: []api.Comment{{ID: 6, Content: "好吃"}}}, nil)
	require.NoError(t, b.Submit(context.Background(), "好吃"))
	assert.ErrorIs(t, nested, optimistic.ErrInFlight)
	assert.Empty(t, rec.Errors())
	require.Len(t, b.Replies(), 1)
	assert.Equal(t, "6", b.Replies()[0].ID)

	// 结束之后可以再次发表，这里被冷却拦住
	err := b.Submit(context.Background(), "再来一条")
	assert.ErrorIs(t, err, ErrCoolingDown)
}

// 删除临时回复的时候，只删除自己，其他的保持原样
func TestBox_RemovePendingExactly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).
		Return(api.Rejected(api.ReasonDuplicate, ""), nil)
	b := NewBox(target, remote, signedIn(), &prompter{}, &notify.Recorder{}, nil, Config{})
	before := []Reply{
		{ID: "tmp-other", Content: "另一条", Optimistic: true},
		{ID: "7", Content: "服务端的"},
		{ID: "3", Content: "更早的"},
	}
	b.replies = append([]Reply(nil), before...)
	require.Error(t, b.Submit(context.Background(), "好吃"))
	assert.Equal(t, before, b.Replies())
}

func TestBox_MergeOtherPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).Return(api.Accepted(8), nil)
	remote.EXPECT().FetchCommentReplies(gomock.Any(), int64(100), int64(0), defaultPageSize).
		Return(api.CommentList{List: []api.Comment{{ID: 8, Content: "好吃"}, {ID: 7}}}, nil).Times(1)
	b := NewBox(target, remote, signedIn(), &prompter{}, &notify.Recorder{}, nil, Config{})
	b.replies = []Reply{
		{ID: "tmp-other", Content: "另一条", Optimistic: true},
		{ID: "7"},
	}
	require.NoError(t, b.Submit(context.Background(), "好吃"))
	ids := make([]string, 0, 3)
	for _, r := range b.Replies() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"tmp-other", "8", "7"}, ids)
}

func TestBox_RefetchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).Return(api.Accepted(8), nil)
	remote.EXPECT().FetchCommentReplies(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(api.CommentList{}, errors.New("network"))
	b := NewBox(target, remote, signedIn(), &prompter{}, &notify.Recorder{}, nil, Config{})
	require.NoError(t, b.Submit(context.Background(), "好吃"))
	replies := b.Replies()
	require.Len(t, replies, 1)
	assert.Equal(t, "8", replies[0].ID)
	assert.False(t, replies[0].Optimistic)
}

func TestBox_CooldownGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := &clock{now: time.Unix(1000, 0)}
	remote := commentmocks.NewMockRemote(ctrl)
	// 冷却期间的提交不会发请求
	remote.EXPECT().PostComment(gomock.Any(), gomock.Any()).Return(api.Accepted(1), nil).Times(2)
	remote.EXPECT().FetchCommentReplies(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(api.CommentList{}, nil).Times(2)
	b := NewBox(target, remote, signedIn(), &prompter{}, &notify.Recorder{}, newCooldownWithClock(c.Now), Config{})
	require.NoError(t, b.Submit(context.Background(), "第一条"))
	start := c.now
	for i := 1; i <= 4; i++ {
		c.now = start.Add(time.Duration(i) * time.Second)
		assert.Equal(t, 5-i, b.Cooldown().Remaining())
		assert.Contains(t, b.Placeholder(), "秒")
		err := b.Submit(context.Background(), "第二条")
		assert.ErrorIs(t, err, ErrCoolingDown)
	}
	c.now = start.Add(5 * time.Second)
	assert.Equal(t, "写下你的回复", b.Placeholder())
	require.NoError(t, b.Submit(context.Background(), "第二条"))
}

func TestCooldown_Run(t *testing.T) {
	cd := NewCooldown()
	cd.Start(1500 * time.Millisecond)
	var ticks []int
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cd.Run(ctx, func(remaining int) {
		ticks = append(ticks, remaining)
	})
	require.NotEmpty(t, ticks)
	assert.Equal(t, 2, ticks[0])
	assert.Equal(t, 0, ticks[len(ticks)-1])
}

func TestNewRepliesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := commentmocks.NewMockRemote(ctrl)
	// 第二页返回一样的数据
	remote.EXPECT().FetchCommentReplies(gomock.Any(), int64(100), gomock.Any(), 2).
		Return(api.CommentList{List: []api.Comment{{ID: 9}, {ID: 8}}, HasMore: true}, nil).Times(2)
	l := NewRepliesList(remote, 100, 2)
	page, err := l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8", page.NextCursor)
	page, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Len(t, l.Items(), 2)
}
