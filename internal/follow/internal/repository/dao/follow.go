// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowDAO interface {
	// Insert 已经关注过的返回 false
	Insert(ctx context.Context, r FollowRelation) (bool, error)
	// Delete 没有关注过的返回 false
	Delete(ctx context.Context, follower, followee int64) (bool, error)
	Exists(ctx context.Context, follower, followee int64) (bool, error)
	// FollowerList 关注了 followee 的人，按照 id 倒序，maxId 为 0 表示从头开始
	FollowerList(ctx context.Context, followee, maxId int64, limit int) ([]FollowRelation, error)
	// FolloweeList follower 关注的人
	FolloweeList(ctx context.Context, follower, maxId int64, limit int) ([]FollowRelation, error)
	CntFollower(ctx context.Context, uid int64) (int64, error)
	CntFollowee(ctx context.Context, uid int64) (int64, error)
}

type GORMFollowDAO struct {
	db *egorm.Component
}

func NewGORMFollowDAO(db *egorm.Component) FollowDAO {
	return &GORMFollowDAO{db: db}
}

func (dao *GORMFollowDAO) Insert(ctx context.Context, r FollowRelation) (bool, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	res := dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&r)
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMFollowDAO) Delete(ctx context.Context, follower, followee int64) (bool, error) {
	res := dao.db.WithContext(ctx).
		Where("follower = ? AND followee = ?", follower, followee).
		Delete(&FollowRelation{})
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMFollowDAO) Exists(ctx context.Context, follower, followee int64) (bool, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&FollowRelation{}).
		Where("follower = ? AND followee = ?", follower, followee).
		Count(&cnt).Error
	return cnt > 0, err
}

func (dao *GORMFollowDAO) FollowerList(ctx context.Context, followee, maxId int64, limit int) ([]FollowRelation, error) {
	var res []FollowRelation
	err := dao.page(ctx, maxId, limit).
		Where("followee = ?", followee).
		Find(&res).Error
	return res, err
}

func (dao *GORMFollowDAO) FolloweeList(ctx context.Context, follower, maxId int64, limit int) ([]FollowRelation, error) {
	var res []FollowRelation
	err := dao.page(ctx, maxId, limit).
		Where("follower = ?", follower).
		Find(&res).Error
	return res, err
}

func (dao *GORMFollowDAO) page(ctx context.Context, maxId int64, limit int) *gorm.DB {
	db := dao.db.WithContext(ctx).Model(&FollowRelation{})
	if maxId > 0 {
		db = db.Where("id < ?", maxId)
	}
	return db.Order("id DESC").Limit(limit)
}

func (dao *GORMFollowDAO) CntFollower(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&FollowRelation{}).
		Where("followee = ?", uid).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMFollowDAO) CntFollowee(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&FollowRelation{}).
		Where("follower = ?", uid).Count(&cnt).Error
	return cnt, err
}

// FollowRelation 关注关系，取消关注直接删除
type FollowRelation struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Follower int64 `gorm:"uniqueIndex:follower_followee"`
	// 查询粉丝列表
	Followee int64 `gorm:"uniqueIndex:follower_followee;index"`
	Ctime    int64
	Utime    int64
}
