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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvalidParentID = errors.New("父评论ID非法")
	// ErrCommentNotFound 评论不存在或者不是自己的
	ErrCommentNotFound = errors.New("评论不存在")
)

// Comment 点评下面的评论和回复。
// 顶层评论的 AncestorID 和 ParentID 都是 NULL，
// 回复的 AncestorID 指向它所在的顶层评论，ParentID 指向直接回复的那一条
type Comment struct {
	ID  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"not null;index:idx_uid"`

	Biz   string `gorm:"type:varchar(64);not null;index:idx_target,priority:1"`
	BizID int64  `gorm:"not null;index:idx_target,priority:2"`

	Content string `gorm:"type:text;not null"`

	AncestorID sql.Null[int64] `gorm:"index:idx_ancestor"`
	ParentID   sql.Null[int64] `gorm:"index:idx_parent"`
	// 删除一条评论的时候，回复它的评论一起删掉
	Parent *Comment `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`

	Ctime int64
	Utime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 返回新评论的 ID。回复的 AncestorID 由父评论推导出来
	Create(ctx context.Context, comment Comment) (int64, error)
	// FindAncestors 顶层评论，ID 小于 maxID，新的在前
	FindAncestors(ctx context.Context, biz string, bizID, maxID int64, limit int) ([]Comment, error)
	// FindChildren 直接回复 parentID 的评论，早的在前
	FindChildren(ctx context.Context, parentID int64, limit int) ([]Comment, error)
	CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error)
	// FindDescendants 顶层评论下面的全部回复，ID 小于 maxID，新的在前
	FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]Comment, error)
	CountDescendants(ctx context.Context, ancestorID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
	// Delete 只能删除 uid 自己的评论
	Delete(ctx context.Context, id, uid int64) error
}

type GORMCommentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &GORMCommentDAO{db: db}
}

func (d *GORMCommentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ancestorID, err := d.ancestorOf(tx, c)
		if err != nil {
			return err
		}
		c.AncestorID = sql.Null[int64]{V: ancestorID, Valid: ancestorID > 0}
		return tx.Create(&c).Error
	})
	return c.ID, err
}

// ancestorOf 顶层评论返回 0
func (d *GORMCommentDAO) ancestorOf(tx *gorm.DB, c Comment) (int64, error) {
	if !c.ParentID.Valid {
		return 0, nil
	}
	var parent Comment
	err := tx.Where("id = ?", c.ParentID.V).First(&parent).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidParentID, err)
	}
	if parent.Biz != c.Biz || parent.BizID != c.BizID {
		return 0, fmt.Errorf("%w: 父评论不属于 %s:%d", ErrInvalidParentID, c.Biz, c.BizID)
	}
	if parent.AncestorID.Valid {
		return parent.AncestorID.V, nil
	}
	return parent.ID, nil
}

func topLevel(biz string, bizID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("biz = ? AND biz_id = ? AND parent_id IS NULL", biz, bizID)
	}
}

func idBefore(maxID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id < ?", maxID).Order("id DESC")
	}
}

func (d *GORMCommentDAO) FindAncestors(ctx context.Context, biz string, bizID, maxID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Scopes(topLevel(biz, bizID), idBefore(maxID)).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMCommentDAO) FindChildren(ctx context.Context, parentID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMCommentDAO) CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Comment{}).
		Scopes(topLevel(biz, bizID)).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMCommentDAO) FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("ancestor_id = ?", ancestorID).
		Scopes(idBefore(maxID)).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMCommentDAO) CountDescendants(ctx context.Context, ancestorID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Comment{}).
		Where("ancestor_id = ?", ancestorID).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMCommentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCommentDAO) Delete(ctx context.Context, id, uid int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Comment{})
	switch {
	case res.Error != nil:
		return res.Error
	case res.RowsAffected == 0:
		return ErrCommentNotFound
	default:
		return nil
	}
}
