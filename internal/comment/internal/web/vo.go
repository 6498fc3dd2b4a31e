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

package web

type CreateRequest struct {
	Comment Comment `json:"comment"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
	// 目前只有 approved
	Status string `json:"status"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	ID int64 `json:"id"`
	// 回复某个评论
	ParentID   int64 `json:"parentID"`
	AncestorID int64 `json:"ancestorID"`

	// 评论的具体内容
	Content string `json:"content"`

	// 评论的人
	User User `json:"user"`

	// 针对什么东西的评论
	// 注意，即便是回复某个评论，那么这两个字段依旧有值
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Utime int64  `json:"utime"`

	Replies []Comment `json:"replies,omitempty"`
}

type ListRequest struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	// 上一页最后一条评论的 ID，第一页传 0
	MaxID int64 `json:"maxID"`
	Limit int   `json:"limit"`
}

type RepliesRequest struct {
	AncestorID int64 `json:"ancestorID"`
	MaxID      int64 `json:"maxID"`
	Limit      int   `json:"limit"`
}

type DeleteRequest struct {
	ID int64 `json:"id"`
}

type CommentList struct {
	List    []Comment `json:"list"`
	Total   int64     `json:"total"`
	HasMore bool      `json:"hasMore"`
}
