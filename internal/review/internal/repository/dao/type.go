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

import "github.com/ecodeclub/ekit/sqlx"

type Review struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Uid          int64  `gorm:"column:uid;not null;index"`
	RestaurantID int64  `gorm:"column:restaurant_id;not null;index"`
	Rating       uint8  `gorm:"type:tinyint(3);not null;comment:1-5 星"`
	Title        string `gorm:"type:varchar(256)"`
	Content      string `gorm:"column:content;type:text;not null"`
	// 图片地址
	Photos sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Ctime  int64                     `gorm:"column:ctime"`
	Utime  int64                     `gorm:"column:utime"`
}
