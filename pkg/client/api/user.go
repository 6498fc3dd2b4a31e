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

package api

import (
	"context"
	"fmt"

	"github.com/ecodeclub/tastebook/pkg/client/httpx"
)

type UserAPI struct {
	client *httpx.Client
	tokens TokenSource
}

func NewUserAPI(client *httpx.Client, tokens TokenSource) *UserAPI {
	return &UserAPI{client: client, tokens: tokens}
}

func (a *UserAPI) FollowUser(ctx context.Context, uid int64) error {
	return a.client.Post(ctx, "/follow/follow", a.tokens.Token(), followReq{Followee: uid}, nil)
}

func (a *UserAPI) UnfollowUser(ctx context.Context, uid int64) error {
	return a.client.Post(ctx, "/follow/unfollow", a.tokens.Token(), followReq{Followee: uid}, nil)
}

func (a *UserAPI) IsFollowingUser(ctx context.Context, uid int64) (bool, error) {
	var res followStatus
	err := a.client.Post(ctx, "/follow/status", a.tokens.Token(), followReq{Followee: uid}, &res)
	if err != nil {
		return false, fmt.Errorf("查询关注状态失败: %w", err)
	}
	return res.Following, nil
}

// GetFollowingList uid 关注的人
func (a *UserAPI) GetFollowingList(ctx context.Context, uid, maxID int64, limit int) (FollowList, error) {
	return a.list(ctx, "/follow/followees", uid, maxID, limit)
}

// GetFollowersList 关注 uid 的人
func (a *UserAPI) GetFollowersList(ctx context.Context, uid, maxID int64, limit int) (FollowList, error) {
	return a.list(ctx, "/follow/followers", uid, maxID, limit)
}

func (a *UserAPI) list(ctx context.Context, endpoint string, uid, maxID int64, limit int) (FollowList, error) {
	var res FollowList
	err := a.client.Post(ctx, endpoint, a.tokens.Token(), followListReq{
		Uid:   uid,
		MaxID: maxID,
		Limit: limit,
	}, &res)
	if err != nil {
		return FollowList{}, fmt.Errorf("拉取关注列表失败: %w", err)
	}
	return res, nil
}
