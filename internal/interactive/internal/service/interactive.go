package service

import (
	"context"

	"github.com/ecodeclub/tastebook/internal/interactive/internal/domain"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./interactive.go -package=intrmocks -destination=../../mocks/interactive.mock.go InteractiveService
type InteractiveService interface {
	IncrReadCnt(ctx context.Context, biz string, bizId int64) error
	// Like liked 为 false 就是取消点赞。返回的是操作之后服务端的状态
	Like(ctx context.Context, biz string, id int64, uid int64, liked bool) (domain.Interactive, error)
	Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error)
	// GetByIds 没有互动数据的资源也会有一项，计数都是 0
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error)
}

type interactiveService struct {
	repo repository.InteractiveRepository
}

func NewService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{
		repo: repo,
	}
}

func (i *interactiveService) IncrReadCnt(ctx context.Context, biz string, bizId int64) error {
	return i.repo.IncrViewCnt(ctx, biz, bizId)
}

func (i *interactiveService) Like(ctx context.Context, biz string, id int64, uid int64, liked bool) (domain.Interactive, error) {
	var err error
	if liked {
		err = i.repo.Like(ctx, biz, id, uid)
	} else {
		err = i.repo.Unlike(ctx, biz, id, uid)
	}
	if err != nil {
		return domain.Interactive{}, err
	}
	return i.Get(ctx, biz, id, uid)
}

func (i *interactiveService) Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error) {
	var (
		eg    errgroup.Group
		intr  domain.Interactive
		liked bool
	)
	eg.Go(func() error {
		var err error
		intr, err = i.repo.Get(ctx, biz, id)
		return err
	})
	if uid > 0 {
		eg.Go(func() error {
			var err error
			liked, err = i.repo.Liked(ctx, biz, id, uid)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.Interactive{}, err
	}
	intr.Liked = liked
	return intr, nil
}

func (i *interactiveService) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error) {
	intrs, err := i.repo.GetByIds(ctx, biz, uid, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Interactive, len(ids))
	for _, id := range ids {
		res[id] = domain.Interactive{Biz: biz, BizId: id}
	}
	for _, intr := range intrs {
		res[intr.BizId] = intr
	}
	return res, nil
}
