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
	"testing"

	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/ecodeclub/tastebook/internal/follow/internal/event"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository"
	repomocks "github.com/ecodeclub/tastebook/internal/follow/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type producer struct {
	evts []event.FollowEvent
	err  error
}

func (p *producer) Produce(ctx context.Context, evt event.FollowEvent) error {
	p.evts = append(p.evts, evt)
	return p.err
}

func TestFollowService_Follow(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.FollowRepository
		producer *producer
		followee int64
		unfollow bool
		wantErr  error
		wantEvts []event.FollowEvent
	}{
		{
			name: "关注成功",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				return repo
			},
			producer: &producer{},
			followee: 2,
			wantEvts: []event.FollowEvent{{Follower: 1, Followee: 2, Action: "follow"}},
		},
		{
			name: "重复关注不发事件",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				return repo
			},
			producer: &producer{},
			followee: 2,
		},
		{
			name: "关注自己",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				return repomocks.NewMockFollowRepository(ctrl)
			},
			producer: &producer{},
			followee: 1,
			wantErr:  ErrFollowSelf,
		},
		{
			name: "发送事件失败也算成功",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				return repo
			},
			producer: &producer{err: errors.New("mock mq error")},
			followee: 2,
			wantEvts: []event.FollowEvent{{Follower: 1, Followee: 2, Action: "follow"}},
		},
		{
			name: "取消关注成功",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Unfollow(gomock.Any(), int64(1), int64(2)).Return(true, nil)
				return repo
			},
			producer: &producer{},
			followee: 2,
			unfollow: true,
			wantEvts: []event.FollowEvent{{Follower: 1, Followee: 2, Action: "unfollow"}},
		},
		{
			name: "没有关注过_取消关注",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Unfollow(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				return repo
			},
			producer: &producer{},
			followee: 2,
			unfollow: true,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.FollowRepository {
				repo := repomocks.NewMockFollowRepository(ctrl)
				repo.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).
					Return(false, errors.New("mock db error"))
				return repo
			},
			producer: &producer{},
			followee: 2,
			wantErr:  errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewFollowService(tc.mock(ctrl), tc.producer)
			var err error
			if tc.unfollow {
				err = svc.Unfollow(context.Background(), 1, tc.followee)
			} else {
				err = svc.Follow(context.Background(), 1, tc.followee)
			}
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantEvts, tc.producer.evts)
		})
	}
}

func TestFollowService_FollowerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockFollowRepository(ctrl)
	repo.EXPECT().FollowerList(gomock.Any(), int64(1), int64(0), 3).
		Return([]domain.FollowRelation{{Id: 9}, {Id: 8}, {Id: 7}}, nil)
	repo.EXPECT().FollowerList(gomock.Any(), int64(1), int64(8), 3).
		Return([]domain.FollowRelation{{Id: 7}}, nil)
	svc := NewFollowService(repo, &producer{})

	rs, hasMore, err := svc.FollowerList(context.Background(), 1, 0, 2)
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, []domain.FollowRelation{{Id: 9}, {Id: 8}}, rs)

	rs, hasMore, err = svc.FollowerList(context.Background(), 1, 8, 2)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Equal(t, []domain.FollowRelation{{Id: 7}}, rs)
}

func TestFollowService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockFollowRepository(ctrl)
	repo.EXPECT().Following(gomock.Any(), int64(1), int64(2)).Return(true, nil)
	repo.EXPECT().Following(gomock.Any(), int64(2), int64(1)).Return(false, nil)
	svc := NewFollowService(repo, &producer{})
	following, followedBy, err := svc.Status(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	assert.False(t, followedBy)

	// 自己和自己不需要查询
	following, followedBy, err = svc.Status(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, following)
	assert.False(t, followedBy)
}
