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
	"strings"
	"testing"

	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository"
	repomocks "github.com/ecodeclub/tastebook/internal/review/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type producer struct {
	evts []interactive.Event
	err  error
}

func (p *producer) Produce(ctx context.Context, evt interactive.Event) error {
	p.evts = append(p.evts, evt)
	return p.err
}

func TestReviewSvc_Save(t *testing.T) {
	valid := domain.Review{Uid: 1, RestaurantID: 10, Rating: 5, Title: " 好吃 ", Content: " 牛肉面很好吃 "}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ReviewRepo
		review  func() domain.Review
		wantID  int64
		wantErr error
	}{
		{
			name: "发表成功",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				repo := repomocks.NewMockReviewRepo(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.Review{
					Uid: 1, RestaurantID: 10, Rating: 5, Title: "好吃", Content: "牛肉面很好吃",
				}).Return(int64(3), nil)
				return repo
			},
			review: func() domain.Review { return valid },
			wantID: 3,
		},
		{
			name: "评分为 0",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				return repomocks.NewMockReviewRepo(ctrl)
			},
			review: func() domain.Review {
				re := valid
				re.Rating = 0
				return re
			},
			wantErr: ErrInvalidReview,
		},
		{
			name: "评分超过 5",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				return repomocks.NewMockReviewRepo(ctrl)
			},
			review: func() domain.Review {
				re := valid
				re.Rating = 6
				return re
			},
			wantErr: ErrInvalidReview,
		},
		{
			name: "内容为空",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				return repomocks.NewMockReviewRepo(ctrl)
			},
			review: func() domain.Review {
				re := valid
				re.Content = "  "
				return re
			},
			wantErr: ErrInvalidReview,
		},
		{
			name: "内容太长",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				return repomocks.NewMockReviewRepo(ctrl)
			},
			review: func() domain.Review {
				re := valid
				re.Content = strings.Repeat("好", maxContentLength+1)
				return re
			},
			wantErr: ErrInvalidReview,
		},
		{
			name: "图片太多",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				return repomocks.NewMockReviewRepo(ctrl)
			},
			review: func() domain.Review {
				re := valid
				re.Photos = make([]string, maxPhotos+1)
				return re
			},
			wantErr: ErrInvalidReview,
		},
		{
			name: "修改别人的点评",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				repo := repomocks.NewMockReviewRepo(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrReviewNotFound)
				return repo
			},
			review: func() domain.Review {
				re := valid
				re.ID = 99
				return re
			},
			wantErr: ErrReviewNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewReviewSvc(tc.mock(ctrl), &producer{})
			id, err := svc.Save(context.Background(), tc.review())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestReviewSvc_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockReviewRepo(ctrl)
	q := domain.ListQuery{Uid: 1, Offset: 2, Limit: 2}
	repo.EXPECT().List(gomock.Any(), domain.ListQuery{Uid: 1, Offset: 2, Limit: 3}).
		Return([]domain.Review{{ID: 5}, {ID: 4}, {ID: 3}}, nil)
	repo.EXPECT().Count(gomock.Any(), q).Return(int64(5), nil)
	svc := NewReviewSvc(repo, &producer{})
	page, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, domain.Page{
		Reviews: []domain.Review{{ID: 5}, {ID: 4}},
		Total:   5,
		HasMore: true,
	}, page)

	// 最后一页
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Review{{ID: 1}}, nil)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(5), nil)
	page, err = svc.List(context.Background(), domain.ListQuery{Uid: 1, Offset: 4, Limit: 2})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Len(t, page.Reviews, 1)
}

func TestReviewSvc_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.ReviewRepo
		producer *producer
		wantErr  error
		wantEvts []interactive.Event
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				repo := repomocks.NewMockReviewRepo(ctrl)
				repo.EXPECT().Info(gomock.Any(), int64(3)).Return(domain.Review{ID: 3}, nil)
				return repo
			},
			producer: &producer{},
			wantEvts: []interactive.Event{{Biz: "review", BizId: 3, Action: "view", Uid: 1}},
		},
		{
			name: "发送事件失败",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				repo := repomocks.NewMockReviewRepo(ctrl)
				repo.EXPECT().Info(gomock.Any(), int64(3)).Return(domain.Review{ID: 3}, nil)
				return repo
			},
			producer: &producer{err: errors.New("mock mq error")},
			wantEvts: []interactive.Event{{Biz: "review", BizId: 3, Action: "view", Uid: 1}},
		},
		{
			name: "点评不存在",
			mock: func(ctrl *gomock.Controller) repository.ReviewRepo {
				repo := repomocks.NewMockReviewRepo(ctrl)
				repo.EXPECT().Info(gomock.Any(), int64(3)).Return(domain.Review{}, repository.ErrReviewNotFound)
				return repo
			},
			producer: &producer{},
			wantErr:  ErrReviewNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewReviewSvc(tc.mock(ctrl), tc.producer)
			_, err := svc.Detail(context.Background(), 3, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantEvts, tc.producer.evts)
		})
	}
}
