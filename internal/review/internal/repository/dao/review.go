package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ReviewDAO interface {
	Create(ctx context.Context, review Review) (int64, error)
	// Update 只能修改自己的点评，没有修改到任何数据返回 ErrRecordNotFound
	Update(ctx context.Context, review Review) error

	Get(ctx context.Context, id int64) (Review, error)

	// List 按照 ID 倒序，uid 或者 restaurantID 为 0 表示不作为条件
	List(ctx context.Context, uid, restaurantID int64, offset, limit int) ([]Review, error)
	Count(ctx context.Context, uid, restaurantID int64) (int64, error)
}

type reviewDao struct {
	db *egorm.Component
}

func NewReviewDAO(db *egorm.Component) ReviewDAO {
	return &reviewDao{
		db: db,
	}
}

func (r *reviewDao) Create(ctx context.Context, review Review) (int64, error) {
	now := time.Now().UnixMilli()
	review.Utime = now
	review.Ctime = now
	err := r.db.WithContext(ctx).Create(&review).Error
	return review.ID, err
}

func (r *reviewDao) Update(ctx context.Context, review Review) error {
	res := r.db.WithContext(ctx).Model(&Review{}).
		Where("id = ? AND uid = ?", review.ID, review.Uid).
		Updates(map[string]any{
			"restaurant_id": review.RestaurantID,
			"rating":        review.Rating,
			"title":         review.Title,
			"content":       review.Content,
			"photos":        review.Photos,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *reviewDao) Get(ctx context.Context, id int64) (Review, error) {
	var review Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		return Review{}, err
	}
	return review, nil
}

func (r *reviewDao) List(ctx context.Context, uid, restaurantID int64, offset, limit int) ([]Review, error) {
	var reviews []Review
	err := r.where(r.db.WithContext(ctx), uid, restaurantID).
		Order("id DESC"). // 按ID降序排序，最新的记录在前面
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewDao) Count(ctx context.Context, uid, restaurantID int64) (int64, error) {
	var count int64
	err := r.where(r.db.WithContext(ctx).Model(&Review{}), uid, restaurantID).Count(&count).Error
	return count, err
}

func (r *reviewDao) where(db *gorm.DB, uid, restaurantID int64) *gorm.DB {
	if uid > 0 {
		db = db.Where("uid = ?", uid)
	}
	if restaurantID > 0 {
		db = db.Where("restaurant_id = ?", restaurantID)
	}
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}
