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

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./guard.go -package=cachemocks -destination=./mocks/guard.mock.go CommentGuard

// CommentGuard 防止重复评论和刷评论
type CommentGuard interface {
	// MarkContent 同一个人对同一个资源发表相同的内容，window 内只有第一次返回 true
	MarkContent(ctx context.Context, uid int64, biz string, bizID int64, content string, window time.Duration) (bool, error)
	// MarkPost interval 内只有第一次返回 true
	MarkPost(ctx context.Context, uid int64, interval time.Duration) (bool, error)
	// ReleaseContent 评论没有发出去，撤销内容标记
	ReleaseContent(ctx context.Context, uid int64, biz string, bizID int64, content string) error
	ReleasePost(ctx context.Context, uid int64) error
}

type CommentECache struct {
	ec ecache.Cache
}

func NewCommentECache(ec ecache.Cache) CommentGuard {
	return &CommentECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "comment:",
		},
	}
}

func (c *CommentECache) MarkContent(ctx context.Context, uid int64, biz string, bizID int64, content string, window time.Duration) (bool, error) {
	ok, err := c.ec.SetNX(ctx, c.contentKey(uid, biz, bizID, content), 1, window)
	return ok, errors.Wrap(err, "标记评论内容失败")
}

func (c *CommentECache) MarkPost(ctx context.Context, uid int64, interval time.Duration) (bool, error) {
	ok, err := c.ec.SetNX(ctx, c.postKey(uid), 1, interval)
	return ok, errors.Wrap(err, "标记评论频率失败")
}

func (c *CommentECache) ReleaseContent(ctx context.Context, uid int64, biz string, bizID int64, content string) error {
	_, err := c.ec.Delete(ctx, c.contentKey(uid, biz, bizID, content))
	return err
}

func (c *CommentECache) ReleasePost(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.postKey(uid))
	return err
}

func (c *CommentECache) contentKey(uid int64, biz string, bizID int64, content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("dup:%d:%s:%d:%s", uid, biz, bizID, hex.EncodeToString(sum[:]))
}

func (c *CommentECache) postKey(uid int64) string {
	return fmt.Sprintf("flood:%d", uid)
}
