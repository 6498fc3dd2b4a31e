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
	"github.com/ecodeclub/tastebook/internal/interactive/internal/domain"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./interactive.go -package=repomocks -destination=./mocks/interactive.mock.go InteractiveRepository
type InteractiveRepository interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	Like(ctx context.Context, biz string, id int64, uid int64) error
	Unlike(ctx context.Context, biz string, id int64, uid int64) error
	// Get 没有任何互动数据的时候返回计数都是 0 的结果
	Get(ctx context.Context, biz string, id int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error)
	Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error)
}

type interactiveRepository struct {
	dao    dao.InteractiveDAO
	cache  cache.InteractiveCache
	logger *elog.Component
}

func NewCachedInteractiveRepository(d dao.InteractiveDAO, c cache.InteractiveCache) InteractiveRepository {
	return &interactiveRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (i *interactiveRepository) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	err := i.dao.IncrViewCnt(ctx, biz, bizId)
	if err != nil {
		return err
	}
	i.evict(ctx, biz, bizId)
	return nil
}

func (i *interactiveRepository) Like(ctx context.Context, biz string, id int64, uid int64) error {
	err := i.dao.Like(ctx, biz, id, uid)
	if err != nil {
		return err
	}
	i.evict(ctx, biz, id)
	return nil
}

func (i *interactiveRepository) Unlike(ctx context.Context, biz string, id int64, uid int64) error {
	err := i.dao.Unlike(ctx, biz, id, uid)
	if err != nil {
		return err
	}
	i.evict(ctx, biz, id)
	return nil
}

func (i *interactiveRepository) evict(ctx context.Context, biz string, id int64) {
	err := i.cache.Delete(ctx, biz, id)
	if err != nil {
		// 缓存会过期，这里只记录
		i.logger.Error("删除互动缓存失败",
			elog.FieldErr(err),
			elog.String("biz", biz),
			elog.Int64("bizId", id))
	}
}

func (i *interactiveRepository) Get(ctx context.Context, biz string, id int64) (domain.Interactive, error) {
	intr, err := i.cache.Get(ctx, biz, id)
	if err == nil {
		return intr, nil
	}
	entity, err := i.dao.Get(ctx, biz, id)
	switch {
	case errors.Is(err, dao.ErrRecordNotFound):
		intr = domain.Interactive{Biz: biz, BizId: id}
	case err != nil:
		return domain.Interactive{}, err
	default:
		intr = i.toDomain(entity)
	}
	err = i.cache.Set(ctx, intr)
	if err != nil {
		i.logger.Error("回写互动缓存失败", elog.FieldErr(err), elog.Int64("bizId", id))
	}
	return intr, nil
}

func (i *interactiveRepository) Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	_, err := i.dao.GetLikeInfo(ctx, biz, id, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *interactiveRepository) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error) {
	var (
		intrs    []dao.Interactive
		likedMap = map[int64]struct{}{}
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		intrs, eerr = i.dao.GetByIds(ctx, biz, ids)
		return eerr
	})
	if uid > 0 {
		eg.Go(func() error {
			likes, eerr := i.dao.GetUserLikes(ctx, uid, biz, ids)
			if eerr != nil {
				return eerr
			}
			for _, like := range likes {
				likedMap[like.BizId] = struct{}{}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.Map(intrs, func(idx int, src dao.Interactive) domain.Interactive {
		intr := i.toDomain(src)
		_, intr.Liked = likedMap[src.BizId]
		return intr
	}), nil
}

func (i *interactiveRepository) toDomain(ie dao.Interactive) domain.Interactive {
	return domain.Interactive{
		Biz:     ie.Biz,
		BizId:   ie.BizId,
		LikeCnt: ie.LikeCnt,
		ViewCnt: ie.ViewCnt,
	}
}
