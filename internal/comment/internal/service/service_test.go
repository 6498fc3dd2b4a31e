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

package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ecodeclub/tastebook/internal/comment/internal/domain"
	cachemocks "github.com/ecodeclub/tastebook/internal/comment/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/tastebook/internal/comment/internal/repository/mocks"
	"github.com/ecodeclub/tastebook/internal/user"
	usermocks "github.com/ecodeclub/tastebook/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errMockDB = errors.New("mock db error")

func TestCommentService_Create(t *testing.T) {
	cfg := DefaultConfig()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard)
		comment domain.Comment
		wantID  int64
		wantErr error
	}{
		{
			name: "发表成功",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(true, nil)
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(true, nil)
				repo.EXPECT().Create(gomock.Any(), domain.Comment{
					User:    domain.User{ID: 1},
					Biz:     "review",
					BizID:   2,
					Content: "好吃",
				}).Return(int64(10), nil)
				return repo, guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "  好吃\n"},
			wantID:  10,
		},
		{
			name: "空内容",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				return repomocks.NewMockCommentRepository(ctrl), cachemocks.NewMockCommentGuard(ctrl)
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "   "},
			wantErr: ErrInvalidContent,
		},
		{
			name: "内容过长",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				return repomocks.NewMockCommentRepository(ctrl), cachemocks.NewMockCommentGuard(ctrl)
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: strings.Repeat("好", 501)},
			wantErr: ErrInvalidContent,
		},
		{
			name: "重复评论",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(false, nil)
				return repomocks.NewMockCommentRepository(ctrl), guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "好吃"},
			wantErr: ErrDuplicateComment,
		},
		{
			name: "评论过于频繁",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(true, nil)
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(false, nil)
				// 只撤销内容标记
				guard.EXPECT().ReleaseContent(gomock.Any(), int64(1), "review", int64(2), "好吃").Return(nil)
				return repomocks.NewMockCommentRepository(ctrl), guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "好吃"},
			wantErr: ErrCommentTooFrequent,
		},
		{
			name: "缓存不可用放行",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(false, errors.New("mock error"))
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(false, errors.New("mock error"))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				return repo, guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "好吃"},
			wantID:  11,
		},
		{
			name: "缓存不可用_数据库失败不撤销标记",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(false, errors.New("mock error"))
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(false, errors.New("mock error"))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				return repo, guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "好吃"},
			wantErr: errMockDB,
		},
		{
			name: "频率标记失败_数据库失败只撤销内容标记",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(true, nil)
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(false, errors.New("mock error"))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errMockDB)
				guard.EXPECT().ReleaseContent(gomock.Any(), int64(1), "review", int64(2), "好吃").Return(nil)
				return repo, guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, Content: "好吃"},
			wantErr: errMockDB,
		},
		{
			name: "父评论不存在",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockCommentRepository, *cachemocks.MockCommentGuard) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				guard := cachemocks.NewMockCommentGuard(ctrl)
				guard.EXPECT().MarkContent(gomock.Any(), int64(1), "review", int64(2), "好吃", cfg.DuplicateWindow).Return(true, nil)
				guard.EXPECT().MarkPost(gomock.Any(), int64(1), cfg.FloodInterval).Return(true, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), ErrInvalidParentID)
				guard.EXPECT().ReleaseContent(gomock.Any(), int64(1), "review", int64(2), "好吃").Return(nil)
				guard.EXPECT().ReleasePost(gomock.Any(), int64(1)).Return(nil)
				return repo, guard
			},
			comment: domain.Comment{User: domain.User{ID: 1}, Biz: "review", BizID: 2, ParentID: 99, Content: "好吃"},
			wantErr: ErrInvalidParentID,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, guard := tc.mock(ctrl)
			svc := NewCommentService(usermocks.NewMockUserService(ctrl), repo, guard, cfg)
			id, err := svc.Create(context.Background(), tc.comment)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := DefaultConfig()
	repo := repomocks.NewMockCommentRepository(ctrl)
	usrSvc := usermocks.NewMockUserService(ctrl)
	// 第一页 maxID 为 0，多查一条
	repo.EXPECT().FindAncestors(gomock.Any(), "review", int64(2), int64(math.MaxInt64), 3, cfg.MaxSubCnt).
		Return([]domain.Comment{
			{ID: 9, User: domain.User{ID: 1}, Replies: []domain.Comment{{ID: 12, User: domain.User{ID: 3}}}},
			{ID: 8, User: domain.User{ID: 2}},
			{ID: 7, User: domain.User{ID: 1}},
		}, nil)
	repo.EXPECT().CountAncestors(gomock.Any(), "review", int64(2)).Return(int64(5), nil)
	usrSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).Return(map[int64]user.User{
		1: {Id: 1, Nickname: "小明", Avatar: "a1"},
		3: {Id: 3, Nickname: "小红"},
	}, nil)
	svc := NewCommentService(usrSvc, repo, cachemocks.NewMockCommentGuard(ctrl), cfg)
	page, err := svc.List(context.Background(), "review", 2, 0, 2)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, []domain.Comment{
		{
			ID:      9,
			User:    domain.User{ID: 1, NickName: "小明", Avatar: "a1"},
			Replies: []domain.Comment{{ID: 12, User: domain.User{ID: 3, NickName: "小红"}}},
		},
		// 没有找到的用户保持原样
		{ID: 8, User: domain.User{ID: 2}},
	}, page.Comments)
}

func TestCommentService_Replies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCommentRepository(ctrl)
	usrSvc := usermocks.NewMockUserService(ctrl)
	repo.EXPECT().FindDescendants(gomock.Any(), int64(100), int64(12), 3).
		Return([]domain.Comment{{ID: 11, User: domain.User{ID: 1}}}, nil)
	repo.EXPECT().CountDescendants(gomock.Any(), int64(100)).Return(int64(3), nil)
	usrSvc.EXPECT().BatchProfile(gomock.Any(), []int64{1}).Return(map[int64]user.User{}, nil)
	svc := NewCommentService(usrSvc, repo, cachemocks.NewMockCommentGuard(ctrl), DefaultConfig())
	page, err := svc.Replies(context.Background(), 100, 12, 3)
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Len(t, page.Comments, 1)

	repo.EXPECT().FindDescendants(gomock.Any(), int64(100), int64(math.MaxInt64), 3).Return(nil, errors.New("mock db error"))
	repo.EXPECT().CountDescendants(gomock.Any(), int64(100)).Return(int64(3), nil)
	_, err = svc.Replies(context.Background(), 100, 0, 3)
	assert.Error(t, err)
}
