package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./follow.go -package=repomocks -destination=./mocks/follow.mock.go FollowRepository
type FollowRepository interface {
	// Follow 返回 true 表示新建了关注关系
	Follow(ctx context.Context, follower, followee int64) (bool, error)
	// Unfollow 返回 true 表示确实删除了关注关系
	Unfollow(ctx context.Context, follower, followee int64) (bool, error)
	Following(ctx context.Context, follower, followee int64) (bool, error)
	FollowerList(ctx context.Context, followee, maxId int64, limit int) ([]domain.FollowRelation, error)
	FolloweeList(ctx context.Context, follower, maxId int64, limit int) ([]domain.FollowRelation, error)
	Statistic(ctx context.Context, uid int64) (domain.FollowStatistic, error)
}

type CachedFollowRepository struct {
	dao    dao.FollowDAO
	cache  cache.FollowCache
	logger *elog.Component
}

func NewCachedFollowRepository(d dao.FollowDAO, c cache.FollowCache) FollowRepository {
	return &CachedFollowRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedFollowRepository) Follow(ctx context.Context, follower, followee int64) (bool, error) {
	created, err := repo.dao.Insert(ctx, dao.FollowRelation{
		Follower: follower,
		Followee: followee,
	})
	if err != nil || !created {
		return created, err
	}
	repo.evict(ctx, follower, followee)
	return true, nil
}

func (repo *CachedFollowRepository) Unfollow(ctx context.Context, follower, followee int64) (bool, error) {
	deleted, err := repo.dao.Delete(ctx, follower, followee)
	if err != nil || !deleted {
		return deleted, err
	}
	repo.evict(ctx, follower, followee)
	return true, nil
}

func (repo *CachedFollowRepository) evict(ctx context.Context, uids ...int64) {
	err := repo.cache.DeleteStatistic(ctx, uids...)
	if err != nil {
		repo.logger.Error("删除关注统计缓存失败", elog.FieldErr(err), elog.Any("uids", uids))
	}
}

func (repo *CachedFollowRepository) Following(ctx context.Context, follower, followee int64) (bool, error) {
	return repo.dao.Exists(ctx, follower, followee)
}

func (repo *CachedFollowRepository) FollowerList(ctx context.Context, followee, maxId int64, limit int) ([]domain.FollowRelation, error) {
	rs, err := repo.dao.FollowerList(ctx, followee, maxId, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.FollowRelation) domain.FollowRelation {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedFollowRepository) FolloweeList(ctx context.Context, follower, maxId int64, limit int) ([]domain.FollowRelation, error) {
	rs, err := repo.dao.FolloweeList(ctx, follower, maxId, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.FollowRelation) domain.FollowRelation {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedFollowRepository) Statistic(ctx context.Context, uid int64) (domain.FollowStatistic, error) {
	res, err := repo.cache.GetStatistic(ctx, uid)
	if err == nil {
		return res, nil
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var er error
		res.Followers, er = repo.dao.CntFollower(ctx, uid)
		return er
	})
	eg.Go(func() error {
		var er error
		res.Followees, er = repo.dao.CntFollowee(ctx, uid)
		return er
	})
	if err = eg.Wait(); err != nil {
		return domain.FollowStatistic{}, err
	}
	err = repo.cache.SetStatistic(ctx, uid, res)
	if err != nil {
		repo.logger.Error("回写关注统计缓存失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return res, nil
}

func (repo *CachedFollowRepository) toDomain(r dao.FollowRelation) domain.FollowRelation {
	return domain.FollowRelation{
		Id:       r.Id,
		Follower: r.Follower,
		Followee: r.Followee,
		Ctime:    r.Ctime,
	}
}
