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

package domain

const ReviewBiz = "review"

const (
	MinRating = 1
	MaxRating = 5
)

// Review 用户对某家餐厅的点评
type Review struct {
	ID           int64
	Uid          int64
	RestaurantID int64
	// 1 到 5 星
	Rating  int
	Title   string
	Content string
	Photos  []string
	Ctime   int64
	Utime   int64
}

// ListQuery Uid 和 RestaurantID 都不为 0 的时候同时作为条件
type ListQuery struct {
	Uid          int64
	RestaurantID int64
	Offset       int
	Limit        int
}

type Page struct {
	Reviews []Review
	Total   int64
	HasMore bool
}
