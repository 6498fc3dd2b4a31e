package event

const (
	FollowTopic = "follow_events"

	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

// FollowEvent 用户模块据此维护关注数和粉丝数
type FollowEvent struct {
	Follower int64  `json:"follower"`
	Followee int64  `json:"followee"`
	Action   string `json:"action"`
}
