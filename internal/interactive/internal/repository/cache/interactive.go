package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/domain"
)

// InteractiveCache 只缓存计数，不缓存用户是否点赞
type InteractiveCache interface {
	Get(ctx context.Context, biz string, bizId int64) (domain.Interactive, error)
	Set(ctx context.Context, intr domain.Interactive) error
	Delete(ctx context.Context, biz string, bizId int64) error
}

type InteractiveECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewInteractiveECache(c ecache.Cache) InteractiveCache {
	return &InteractiveECache{
		cache: &ecache.NamespaceCache{
			Namespace: "interactive:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (i *InteractiveECache) Get(ctx context.Context, biz string, bizId int64) (domain.Interactive, error) {
	var intr domain.Interactive
	err := i.cache.Get(ctx, i.key(biz, bizId)).JSONScan(&intr)
	return intr, err
}

func (i *InteractiveECache) Set(ctx context.Context, intr domain.Interactive) error {
	intr.Liked = false
	data, err := json.Marshal(intr)
	if err != nil {
		return err
	}
	return i.cache.Set(ctx, i.key(intr.Biz, intr.BizId), data, i.expiration)
}

func (i *InteractiveECache) Delete(ctx context.Context, biz string, bizId int64) error {
	_, err := i.cache.Delete(ctx, i.key(biz, bizId))
	return err
}

func (i *InteractiveECache) key(biz string, bizId int64) string {
	return fmt.Sprintf("cnt:%s:%d", biz, bizId)
}
