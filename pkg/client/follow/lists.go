package follow

import (
	"context"
	"strconv"

	"github.com/ecodeclub/tastebook/internal/pkg/paging"
	"github.com/ecodeclub/tastebook/pkg/client/api"
)

//go:generate mockgen -source=./lists.go -package=followmocks -destination=./mocks/lists.mock.go ListRemote
type ListRemote interface {
	GetFollowersList(ctx context.Context, uid, maxID int64, limit int) (api.FollowList, error)
	GetFollowingList(ctx context.Context, uid, maxID int64, limit int) (api.FollowList, error)
}

// NewList uid 的粉丝或者关注列表。第一页优先使用 ListCache 里的快照
func NewList(remote ListRemote, cache *ListCache, uid int64, kind ListKind, limit int,
	opts ...paging.Option[api.FollowUser, int64]) *paging.List[api.FollowUser, int64] {
	fetch := func(ctx context.Context, cursor string) (paging.Page[api.FollowUser], error) {
		var maxID int64
		if cursor != "" {
			var err error
			maxID, err = strconv.ParseInt(cursor, 10, 64)
			if err != nil {
				return paging.Page[api.FollowUser]{}, err
			}
		}
		var (
			res api.FollowList
			err error
		)
		if cursor == "" && cache != nil {
			if snapshot, ok := cache.Get(uid, kind); ok {
				return toPage(snapshot), nil
			}
		}
		if kind == Followers {
			res, err = remote.GetFollowersList(ctx, uid, maxID, limit)
		} else {
			res, err = remote.GetFollowingList(ctx, uid, maxID, limit)
		}
		if err != nil {
			return paging.Page[api.FollowUser]{}, err
		}
		if cursor == "" && cache != nil {
			cache.Set(uid, kind, res)
		}
		return toPage(res), nil
	}
	return paging.NewList[api.FollowUser, int64]("follow-"+strconv.FormatInt(uid, 10), fetch,
		func(u api.FollowUser) int64 {
			return u.Uid
		}, opts...)
}

func toPage(res api.FollowList) paging.Page[api.FollowUser] {
	page := paging.Page[api.FollowUser]{Items: res.List, HasMore: res.HasMore}
	if res.HasMore && res.NextCursor > 0 {
		page.NextCursor = strconv.FormatInt(res.NextCursor, 10)
	}
	return page
}
