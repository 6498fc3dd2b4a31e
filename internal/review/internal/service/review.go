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
	"unicode/utf8"

	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	maxTitleLength   = 128
	maxContentLength = 5000
	maxPhotos        = 9
)

var (
	ErrInvalidReview  = errors.New("点评内容不合法")
	ErrReviewNotFound = repository.ErrReviewNotFound
)

//go:generate mockgen -source=./review.go -package=reviewmocks -destination=../../mocks/review.mock.go ReviewSvc
type ReviewSvc interface {
	// Save 发表或者修改点评，只能修改自己的
	Save(ctx context.Context, re domain.Review) (int64, error)
	List(ctx context.Context, q domain.ListQuery) (domain.Page, error)
	// Detail uid 为 0 表示没有登录，不影响浏览计数
	Detail(ctx context.Context, id, uid int64) (domain.Review, error)
}

func NewReviewSvc(repo repository.ReviewRepo, producer mqx.Producer[interactive.Event]) ReviewSvc {
	return &reviewSvc{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type reviewSvc struct {
	repo     repository.ReviewRepo
	producer mqx.Producer[interactive.Event]
	logger   *elog.Component
}

func (r *reviewSvc) Save(ctx context.Context, re domain.Review) (int64, error) {
	re.Title = strings.TrimSpace(re.Title)
	re.Content = strings.TrimSpace(re.Content)
	if !valid(re) {
		return 0, ErrInvalidReview
	}
	return r.repo.Save(ctx, re)
}

func valid(re domain.Review) bool {
	return re.RestaurantID > 0 &&
		re.Rating >= domain.MinRating && re.Rating <= domain.MaxRating &&
		re.Content != "" &&
		utf8.RuneCountInString(re.Content) <= maxContentLength &&
		utf8.RuneCountInString(re.Title) <= maxTitleLength &&
		len(re.Photos) <= maxPhotos
}

func (r *reviewSvc) List(ctx context.Context, q domain.ListQuery) (domain.Page, error) {
	var eg errgroup.Group
	var count int64
	var reviews []domain.Review
	limit := q.Limit
	eg.Go(func() error {
		var eerr error
		// 多查一条判断还有没有
		query := q
		query.Limit = limit + 1
		reviews, eerr = r.repo.List(ctx, query)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		count, eerr = r.repo.Count(ctx, q)
		return eerr
	})
	if err := eg.Wait(); err != nil {
		return domain.Page{}, err
	}
	page := domain.Page{Total: count}
	if len(reviews) > limit {
		reviews = reviews[:limit]
		page.HasMore = true
	}
	page.Reviews = reviews
	return page, nil
}

func (r *reviewSvc) Detail(ctx context.Context, id, uid int64) (domain.Review, error) {
	re, err := r.repo.Info(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	// 浏览计数丢了也没关系
	err = r.producer.Produce(ctx, interactive.Event{
		Biz:    domain.ReviewBiz,
		BizId:  id,
		Action: "view",
		Uid:    uid,
	})
	if err != nil {
		r.logger.Error("发送点评浏览事件失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return re, nil
}
