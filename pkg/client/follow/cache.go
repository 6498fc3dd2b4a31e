package follow

import (
	"time"

	"github.com/ecodeclub/tastebook/pkg/client/api"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type ListKind uint8

const (
	Followers ListKind = iota + 1
	Following
)

type listKey struct {
	uid  int64
	kind ListKind
}

// ListCache 关注列表、粉丝列表第一页的快照
type ListCache struct {
	lru *expirable.LRU[listKey, api.FollowList]
}

func NewListCache(size int, ttl time.Duration) *ListCache {
	return &ListCache{
		lru: expirable.NewLRU[listKey, api.FollowList](size, nil, ttl),
	}
}

func (c *ListCache) Get(uid int64, kind ListKind) (api.FollowList, bool) {
	return c.lru.Get(listKey{uid: uid, kind: kind})
}

func (c *ListCache) Set(uid int64, kind ListKind, list api.FollowList) {
	c.lru.Add(listKey{uid: uid, kind: kind}, list)
}

// Invalidate 关注关系变了，uid 的两个列表都不能再用
func (c *ListCache) Invalidate(uid int64) {
	c.lru.Remove(listKey{uid: uid, kind: Followers})
	c.lru.Remove(listKey{uid: uid, kind: Following})
}

func (c *ListCache) Purge() {
	c.lru.Purge()
}
