package domain

// FollowRelation Follower 关注了 Followee
type FollowRelation struct {
	Id       int64
	Follower int64
	Followee int64
	Ctime    int64
}

// FollowStatistic 用户的关注数据
type FollowStatistic struct {
	// 被多少人关注
	Followers int64
	// 自己关注了多少人
	Followees int64
}
