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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrReviewNotFound = errors.New("点评不存在")

//go:generate mockgen -source=./review.go -package=repomocks -destination=./mocks/review.mock.go ReviewRepo
type ReviewRepo interface {
	// Save ID 为 0 的时候新建，否则修改
	Save(ctx context.Context, re domain.Review) (int64, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.Review, error)
	Count(ctx context.Context, q domain.ListQuery) (int64, error)
	Info(ctx context.Context, id int64) (domain.Review, error)
}

type reviewRepo struct {
	reviewDao dao.ReviewDAO
	cache     cache.ReviewCache
	logger    *elog.Component
}

func NewReviewRepo(reviewDao dao.ReviewDAO, c cache.ReviewCache) ReviewRepo {
	return &reviewRepo{
		reviewDao: reviewDao,
		cache:     c,
		logger:    elog.DefaultLogger,
	}
}

func (r *reviewRepo) Save(ctx context.Context, re domain.Review) (int64, error) {
	daoReview := toDaoReview(re)
	if re.ID == 0 {
		return r.reviewDao.Create(ctx, daoReview)
	}
	err := r.reviewDao.Update(ctx, daoReview)
	if dao.IsNotFound(err) {
		return 0, ErrReviewNotFound
	}
	if err != nil {
		return 0, err
	}
	if er := r.cache.DelReview(ctx, re.ID); er != nil {
		r.logger.Error("删除点评缓存失败", elog.FieldErr(er), elog.Int64("id", re.ID))
	}
	return re.ID, nil
}

func (r *reviewRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Review, error) {
	reviews, err := r.reviewDao.List(ctx, q.Uid, q.RestaurantID, q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	list := slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return toDomainReview(src)
	})
	return list, nil
}

func (r *reviewRepo) Count(ctx context.Context, q domain.ListQuery) (int64, error) {
	return r.reviewDao.Count(ctx, q.Uid, q.RestaurantID)
}

func (r *reviewRepo) Info(ctx context.Context, id int64) (domain.Review, error) {
	re, err := r.cache.GetReview(ctx, id)
	if err == nil {
		return re, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		r.logger.Error("查询点评缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	review, err := r.reviewDao.Get(ctx, id)
	if dao.IsNotFound(err) {
		return domain.Review{}, ErrReviewNotFound
	}
	if err != nil {
		return domain.Review{}, err
	}
	re = toDomainReview(review)
	if er := r.cache.SetReview(ctx, re); er != nil {
		r.logger.Error("回写点评缓存失败", elog.FieldErr(er), elog.Int64("id", id))
	}
	return re, nil
}

// 将 domain.Review 转换为 dao.Review
func toDaoReview(review domain.Review) dao.Review {
	return dao.Review{
		ID:           review.ID,
		Uid:          review.Uid,
		RestaurantID: review.RestaurantID,
		Rating:       uint8(review.Rating),
		Title:        review.Title,
		Content:      review.Content,
		Photos: sqlx.JsonColumn[[]string]{
			Val:   review.Photos,
			Valid: len(review.Photos) > 0,
		},
	}
}

// 将 dao.Review 转换为 domain.Review
func toDomainReview(review dao.Review) domain.Review {
	return domain.Review{
		ID:           review.ID,
		Uid:          review.Uid,
		RestaurantID: review.RestaurantID,
		Rating:       int(review.Rating),
		Title:        review.Title,
		Content:      review.Content,
		Photos:       review.Photos.Val,
		Ctime:        review.Ctime,
		Utime:        review.Utime,
	}
}
