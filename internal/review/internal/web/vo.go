package web

import (
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
)

// SaveReq ID 不为 0 表示修改
type SaveReq struct {
	ID           int64    `json:"id,omitempty"`
	RestaurantID int64    `json:"restaurantId"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Photos       []string `json:"photos"`
}

func (r SaveReq) toDomain(uid int64) domain.Review {
	return domain.Review{
		ID:           r.ID,
		Uid:          uid,
		RestaurantID: r.RestaurantID,
		Rating:       r.Rating,
		Title:        r.Title,
		Content:      r.Content,
		Photos:       r.Photos,
	}
}

type Review struct {
	ID           int64    `json:"id"`
	Uid          int64    `json:"uid"`
	RestaurantID int64    `json:"restaurantId"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Photos       []string `json:"photos"`
	LikeCnt      int      `json:"likeCnt"`
	Liked        bool     `json:"liked"`
	ViewCnt      int      `json:"viewCnt"`
	Utime        int64    `json:"utime"`
}

type ReviewListResp struct {
	Total   int64    `json:"total"`
	List    []Review `json:"list"`
	HasMore bool     `json:"hasMore"`
}

func newReviewWithInteractive(re domain.Review, intr interactive.Interactive) Review {
	return Review{
		ID:           re.ID,
		Uid:          re.Uid,
		RestaurantID: re.RestaurantID,
		Rating:       re.Rating,
		Title:        re.Title,
		Content:      re.Content,
		Photos:       re.Photos,
		LikeCnt:      intr.LikeCnt,
		Liked:        intr.Liked,
		ViewCnt:      intr.ViewCnt,
		Utime:        re.Utime,
	}
}

type DetailReq struct {
	ID int64 `json:"id,omitempty"`
}

// ListReq uid 和 restaurantId 至少有一个
type ListReq struct {
	Uid          int64 `json:"uid,omitempty"`
	RestaurantID int64 `json:"restaurantId,omitempty"`
	Offset       int   `json:"offset,omitempty"`
	Limit        int   `json:"limit,omitempty"`
}
