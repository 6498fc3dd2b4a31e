package review

import (
	"context"
	"strconv"

	"github.com/ecodeclub/tastebook/internal/pkg/paging"
	"github.com/ecodeclub/tastebook/pkg/client/api"
)

//go:generate mockgen -source=./list.go -package=reviewmocks -destination=./mocks/list.mock.go Remote
type Remote interface {
	UserReviews(ctx context.Context, uid int64, offset, limit int) (api.ReviewList, error)
}

// NewUserReviewsList 某个用户发表的点评，按照 offset 翻页。
// 翻页过程中有新的点评插进来会导致重复，交给 List 按照 id 去重
func NewUserReviewsList(remote Remote, uid int64, limit int,
	opts ...paging.Option[api.Review, int64]) *paging.List[api.Review, int64] {
	fetch := func(ctx context.Context, cursor string) (paging.Page[api.Review], error) {
		offset := 0
		if cursor != "" {
			var err error
			offset, err = strconv.Atoi(cursor)
			if err != nil {
				return paging.Page[api.Review]{}, err
			}
		}
		res, err := remote.UserReviews(ctx, uid, offset, limit)
		if err != nil {
			return paging.Page[api.Review]{}, err
		}
		page := paging.Page[api.Review]{Items: res.List, HasMore: res.HasMore}
		if res.HasMore {
			page.NextCursor = strconv.Itoa(offset + len(res.List))
		}
		return page, nil
	}
	return paging.NewList[api.Review, int64]("reviews-"+strconv.FormatInt(uid, 10), fetch,
		func(r api.Review) int64 {
			return r.ID
		}, opts...)
}
