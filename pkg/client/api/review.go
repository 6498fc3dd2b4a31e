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

// TokenSource 当前登录用户的 access token，未登录返回空字符串
type TokenSource interface {
	Token() string
}

type ReviewAPI struct {
	client *httpx.Client
	tokens TokenSource
}

func NewReviewAPI(client *httpx.Client, tokens TokenSource) *ReviewAPI {
	return &ReviewAPI{client: client, tokens: tokens}
}

func (a *ReviewAPI) LikeReview(ctx context.Context, id int64) (LikeResult, error) {
	return a.like(ctx, BizReview, id, true)
}

func (a *ReviewAPI) UnlikeReview(ctx context.Context, id int64) (LikeResult, error) {
	return a.like(ctx, BizReview, id, false)
}

func (a *ReviewAPI) LikeComment(ctx context.Context, id int64) (LikeResult, error) {
	return a.like(ctx, BizComment, id, true)
}

func (a *ReviewAPI) UnlikeComment(ctx context.Context, id int64) (LikeResult, error) {
	return a.like(ctx, BizComment, id, false)
}

func (a *ReviewAPI) like(ctx context.Context, biz string, id int64, liked bool) (LikeResult, error) {
	var resp likeResp
	err := a.client.Post(ctx, "/intr/like", a.tokens.Token(), likeReq{
		Biz:   biz,
		BizID: id,
		Liked: liked,
	}, &resp)
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{UserLiked: resp.Liked, LikesCount: resp.LikeCnt}, nil
}

// PostReview 发表点评，被拒绝的时候返回 Rejected
func (a *ReviewAPI) PostReview(ctx context.Context, in ReviewInput) (Outcome, error) {
	var id int64
	err := a.client.Post(ctx, "/review/save", a.tokens.Token(), in, &id)
	if err != nil {
		if out, ok := OutcomeFromError(err); ok {
			return out, nil
		}
		return Outcome{}, err
	}
	return Accepted(id), nil
}

// PostComment 发表评论或者回复。重复、过于频繁都以 Rejected 返回
func (a *ReviewAPI) PostComment(ctx context.Context, in CommentInput) (Outcome, error) {
	var resp createCommentResp
	err := a.client.Post(ctx, "/comment/", a.tokens.Token(), createCommentReq{Comment: in}, &resp)
	if err != nil {
		if out, ok := OutcomeFromError(err); ok {
			return out, nil
		}
		return Outcome{}, err
	}
	out := DecodeStatus(resp.Status)
	out.ID = resp.ID
	return out, nil
}

// FetchCommentReplies 按照 id 倒序拉取回复，maxID 为 0 表示第一页
func (a *ReviewAPI) FetchCommentReplies(ctx context.Context, ancestorID, maxID int64, limit int) (CommentList, error) {
	var res CommentList
	err := a.client.Post(ctx, "/comment/replies", a.tokens.Token(), repliesReq{
		AncestorID: ancestorID,
		MaxID:      maxID,
		Limit:      limit,
	}, &res)
	if err != nil {
		return CommentList{}, fmt.Errorf("拉取回复失败: %w", err)
	}
	return res, nil
}

func (a *ReviewAPI) UserReviews(ctx context.Context, uid int64, offset, limit int) (ReviewList, error) {
	var res ReviewList
	err := a.client.Post(ctx, "/review/list", a.tokens.Token(), reviewListReq{
		Uid:    uid,
		Offset: offset,
		Limit:  limit,
	}, &res)
	if err != nil {
		return ReviewList{}, fmt.Errorf("拉取用户点评失败: %w", err)
	}
	return res, nil
}
