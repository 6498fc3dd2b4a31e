package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱已经注册过了
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	// IncrFollowCnt delta 为负数就是减少，不会减到 0 以下
	IncrFollowCnt(ctx context.Context, follower, followee int64, delta int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) IncrFollowCnt(ctx context.Context, follower, followee int64, delta int64) error {
	now := time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&User{}).
			Where("id = ? AND followee_cnt + ? >= 0", follower, delta).
			Updates(map[string]any{
				"followee_cnt": gorm.Expr("`followee_cnt` + ?", delta),
				"utime":        now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&User{}).
			Where("id = ? AND follower_cnt + ? >= 0", followee, delta).
			Updates(map[string]any{
				"follower_cnt": gorm.Expr("`follower_cnt` + ?", delta),
				"utime":        now,
			}).Error
	})
}

type User struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Email       string `gorm:"type:varchar(256);unique"`
	Password    string `gorm:"type:varchar(256)"`
	Nickname    string `gorm:"type:varchar(128)"`
	Avatar      string `gorm:"type:varchar(512)"`
	SN          string `gorm:"type:varchar(256);unique"`
	FollowerCnt int64
	FolloweeCnt int64
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
