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

type FollowReq struct {
	Followee int64 `json:"followee"`
}

type StatusResp struct {
	// 我是否关注了对方
	Following bool `json:"following"`
	// 对方是否关注了我
	FollowedBy bool `json:"followedBy"`
}

type ListReq struct {
	Uid int64 `json:"uid"`
	// 上一页最后一条的 followId，第一页传 0
	MaxId int64 `json:"maxId"`
	Limit int   `json:"limit"`
}

type FollowUser struct {
	FollowId int64  `json:"followId"`
	Uid      int64  `json:"uid"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type ListResp struct {
	List       []FollowUser `json:"list"`
	NextCursor int64        `json:"nextCursor"`
	HasMore    bool         `json:"hasMore"`
}

type StatisticReq struct {
	Uid int64 `json:"uid"`
}

type Statistic struct {
	Followers int64 `json:"followers"`
	Followees int64 `json:"followees"`
}
