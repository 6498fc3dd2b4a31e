package dao

// Interactive 汇总表
type Interactive struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	BizId   int64  `gorm:"uniqueIndex:biz_type_id"`
	Biz     string `gorm:"type:varchar(128);uniqueIndex:biz_type_id"`
	ViewCnt int
	LikeCnt int
	Utime   int64
	Ctime   int64
}

// UserLikeBiz 点赞明细表，一个用户对一个资源最多一条
type UserLikeBiz struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"uniqueIndex:uid_biz_type_id"`
	BizId int64  `gorm:"uniqueIndex:uid_biz_type_id"`
	Biz   string `gorm:"type:varchar(128);uniqueIndex:uid_biz_type_id"`
	Utime int64
	Ctime int64
}
