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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotExist = errors.New("缓存中没有数据")

type FollowCache interface {
	GetStatistic(ctx context.Context, uid int64) (domain.FollowStatistic, error)
	SetStatistic(ctx context.Context, uid int64, s domain.FollowStatistic) error
	DeleteStatistic(ctx context.Context, uids ...int64) error
}

type FollowECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewFollowECache(ec ecache.Cache) FollowCache {
	return &FollowECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "follow:",
		},
		expiration: 30 * time.Minute,
	}
}

func (f *FollowECache) GetStatistic(ctx context.Context, uid int64) (domain.FollowStatistic, error) {
	val := f.ec.Get(ctx, f.statisticKey(uid))
	if val.KeyNotFound() {
		return domain.FollowStatistic{}, ErrKeyNotExist
	}
	var res domain.FollowStatistic
	err := val.JSONScan(&res)
	return res, errors.Wrapf(err, "读取关注统计缓存 uid=%d", uid)
}

func (f *FollowECache) SetStatistic(ctx context.Context, uid int64, s domain.FollowStatistic) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化关注统计")
	}
	return f.ec.Set(ctx, f.statisticKey(uid), data, f.expiration)
}

func (f *FollowECache) DeleteStatistic(ctx context.Context, uids ...int64) error {
	keys := make([]string, 0, len(uids))
	for _, uid := range uids {
		keys = append(keys, f.statisticKey(uid))
	}
	_, err := f.ec.Delete(ctx, keys...)
	return err
}

func (f *FollowECache) statisticKey(uid int64) string {
	return fmt.Sprintf("statistic:%d", uid)
}
