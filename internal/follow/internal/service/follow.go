package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/ecodeclub/tastebook/internal/follow/internal/event"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrFollowSelf = errors.New("不能关注自己")

//go:generate mockgen -source=./follow.go -package=followmocks -destination=../../mocks/follow.mock.go FollowService
type FollowService interface {
	// Follow 幂等，已经关注过的直接返回
	Follow(ctx context.Context, follower, followee int64) error
	// Unfollow 幂等，没有关注过的直接返回
	Unfollow(ctx context.Context, follower, followee int64) error
	// Status uid 是否关注了 target，以及 target 是否关注了 uid
	Status(ctx context.Context, uid, target int64) (following bool, followedBy bool, err error)
	// FollowerList 返回的第二个值表示后面还有没有数据
	FollowerList(ctx context.Context, uid, maxId int64, limit int) ([]domain.FollowRelation, bool, error)
	FolloweeList(ctx context.Context, uid, maxId int64, limit int) ([]domain.FollowRelation, bool, error)
	Statistic(ctx context.Context, uid int64) (domain.FollowStatistic, error)
}

type followService struct {
	repo     repository.FollowRepository
	producer mqx.Producer[event.FollowEvent]
	logger   *elog.Component
}

func NewFollowService(repo repository.FollowRepository,
	producer mqx.Producer[event.FollowEvent]) FollowService {
	return &followService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *followService) Follow(ctx context.Context, follower, followee int64) error {
	if follower == followee {
		return ErrFollowSelf
	}
	created, err := s.repo.Follow(ctx, follower, followee)
	if err != nil || !created {
		return err
	}
	s.produce(ctx, event.FollowEvent{Follower: follower, Followee: followee, Action: event.ActionFollow})
	return nil
}

func (s *followService) Unfollow(ctx context.Context, follower, followee int64) error {
	if follower == followee {
		return ErrFollowSelf
	}
	deleted, err := s.repo.Unfollow(ctx, follower, followee)
	if err != nil || !deleted {
		return err
	}
	s.produce(ctx, event.FollowEvent{Follower: follower, Followee: followee, Action: event.ActionUnfollow})
	return nil
}

// produce 关注关系已经落库，计数晚一点更新也可以接受
func (s *followService) produce(ctx context.Context, evt event.FollowEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送关注事件失败", elog.FieldErr(err), elog.Any("event", evt))
	}
}

func (s *followService) Status(ctx context.Context, uid, target int64) (bool, bool, error) {
	if uid == target {
		return false, false, nil
	}
	var (
		eg                    errgroup.Group
		following, followedBy bool
	)
	eg.Go(func() error {
		var err error
		following, err = s.repo.Following(ctx, uid, target)
		return err
	})
	eg.Go(func() error {
		var err error
		followedBy, err = s.repo.Following(ctx, target, uid)
		return err
	})
	err := eg.Wait()
	return following, followedBy, err
}

func (s *followService) FollowerList(ctx context.Context, uid, maxId int64, limit int) ([]domain.FollowRelation, bool, error) {
	// 多查一条用来判断后面还有没有
	rs, err := s.repo.FollowerList(ctx, uid, maxId, limit+1)
	if err != nil {
		return nil, false, err
	}
	return s.trim(rs, limit)
}

func (s *followService) FolloweeList(ctx context.Context, uid, maxId int64, limit int) ([]domain.FollowRelation, bool, error) {
	rs, err := s.repo.FolloweeList(ctx, uid, maxId, limit+1)
	if err != nil {
		return nil, false, err
	}
	return s.trim(rs, limit)
}

func (s *followService) trim(rs []domain.FollowRelation, limit int) ([]domain.FollowRelation, bool, error) {
	if len(rs) > limit {
		return rs[:limit], true, nil
	}
	return rs, false, nil
}

func (s *followService) Statistic(ctx context.Context, uid int64) (domain.FollowStatistic, error) {
	return s.repo.Statistic(ctx, uid)
}
