package api

import "encoding/json"

const (
	BizReview  = "review"
	BizComment = "comment"
)

// LikeResult 点赞之后服务端的权威状态
type LikeResult struct {
	UserLiked  bool
	LikesCount int64
}

type likeReq struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizId"`
	Liked bool   `json:"liked"`
}

type likeResp struct {
	Liked   bool  `json:"liked"`
	LikeCnt int64 `json:"likeCnt"`
}

type Review struct {
	ID           int64    `json:"id"`
	Uid          int64    `json:"uid"`
	RestaurantID int64    `json:"restaurantId"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Photos       []string `json:"photos"`
	LikeCnt      int64    `json:"likeCnt"`
	Liked        bool     `json:"liked"`
	ViewCnt      int64    `json:"viewCnt"`
	Utime        int64    `json:"utime"`
}

type ReviewInput struct {
	RestaurantID int64    `json:"restaurantId"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Photos       []string `json:"photos"`
}

type reviewListReq struct {
	Uid    int64 `json:"uid"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type ReviewList struct {
	List    []Review `json:"list"`
	HasMore bool     `json:"hasMore"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	ID         int64  `json:"id"`
	ParentID   int64  `json:"parentID"`
	AncestorID int64  `json:"ancestorID"`
	Content    string `json:"content"`
	User       User   `json:"user"`
	Biz        string `json:"biz"`
	BizID      int64  `json:"bizID"`
	Utime      int64  `json:"utime"`
}

type CommentInput struct {
	Biz      string `json:"biz"`
	BizID    int64  `json:"bizID"`
	ParentID int64  `json:"parentID"`
	Content  string `json:"content"`
}

type createCommentReq struct {
	Comment CommentInput `json:"comment"`
}

type createCommentResp struct {
	ID     int64           `json:"id"`
	Status json.RawMessage `json:"status"`
}

type repliesReq struct {
	AncestorID int64 `json:"ancestorID"`
	MaxID      int64 `json:"maxID"`
	Limit      int   `json:"limit"`
}

type CommentList struct {
	List    []Comment `json:"list"`
	HasMore bool      `json:"hasMore"`
}

type followReq struct {
	Followee int64 `json:"followee"`
}

type followStatus struct {
	Following  bool `json:"following"`
	FollowedBy bool `json:"followedBy"`
}

type followListReq struct {
	Uid   int64 `json:"uid"`
	MaxID int64 `json:"maxId"`
	Limit int   `json:"limit"`
}

type FollowUser struct {
	FollowID int64  `json:"followId"`
	Uid      int64  `json:"uid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type FollowList struct {
	List       []FollowUser `json:"list"`
	NextCursor int64        `json:"nextCursor"`
	HasMore    bool         `json:"hasMore"`
}
