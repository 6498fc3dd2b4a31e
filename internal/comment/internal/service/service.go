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

package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/tastebook/internal/comment/internal/domain"
	"github.com/ecodeclub/tastebook/internal/comment/internal/repository"
	"github.com/ecodeclub/tastebook/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidContent     = errors.New("评论内容不合法")
	ErrDuplicateComment   = errors.New("重复评论")
	ErrCommentTooFrequent = errors.New("评论过于频繁")
	ErrCommentNotFound    = repository.ErrCommentNotFound
	ErrInvalidParentID    = repository.ErrInvalidParentID
)

type Config struct {
	MaxLength int `yaml:"maxLength"`
	// 同一个人两条评论之间的最短间隔
	FloodInterval time.Duration `yaml:"floodInterval"`
	// 这段时间内不能发表相同的评论
	DuplicateWindow time.Duration `yaml:"duplicateWindow"`
	// 直接评论带上的回复数量
	MaxSubCnt int `yaml:"maxSubCnt"`
}

func DefaultConfig() Config {
	return Config{
		MaxLength:       500,
		FloodInterval:   5 * time.Second,
		DuplicateWindow: 10 * time.Minute,
		MaxSubCnt:       3,
	}
}

//go:generate mockgen -source=./service.go -package=commentmocks -destination=../../mocks/comment.mock.go CommentService
type CommentService interface {
	// Create 创建直接评论（始祖评论），子评论及孙子评论
	Create(ctx context.Context, comment domain.Comment) (int64, error)
	// List 查找某一业务下的直接评论（始祖评论），按评论时间的倒序排序
	List(ctx context.Context, biz string, bizID, maxID int64, limit int) (domain.Page, error)
	// Replies 查找直接评论（始祖评论）的后代，后评论的在前面
	Replies(ctx context.Context, ancestorID, maxID int64, limit int) (domain.Page, error)
	// Delete 根据ID删除评论及其后裔评论，只能删除自己的
	Delete(ctx context.Context, id, uid int64) error
}

type commentService struct {
	userSvc user.UserService
	repo    repository.CommentRepository
	guard   cache.CommentGuard
	cfg     Config
	logger  *elog.Component
}

func NewCommentService(userSvc user.UserService, repo repository.CommentRepository,
	guard cache.CommentGuard, cfg Config) CommentService {
	return &commentService{
		userSvc: userSvc,
		repo:    repo,
		guard:   guard,
		cfg:     cfg,
		logger:  elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	comment.Content = strings.TrimSpace(comment.Content)
	if comment.Content == "" || utf8.RuneCountInString(comment.Content) > s.cfg.MaxLength {
		return 0, ErrInvalidContent
	}
	uid := comment.User.ID
	// 只撤销本次请求自己设置的标记
	contentMarked, err := s.guard.MarkContent(ctx, uid, comment.Biz, comment.BizID, comment.Content, s.cfg.DuplicateWindow)
	switch {
	case err != nil:
		// 缓存不可用的时候放行
		s.logger.Error("检测重复评论失败", elog.FieldErr(err), elog.Int64("uid", uid))
		contentMarked = false
	case !contentMarked:
		return 0, ErrDuplicateComment
	}
	postMarked, err := s.guard.MarkPost(ctx, uid, s.cfg.FloodInterval)
	switch {
	case err != nil:
		s.logger.Error("检测评论频率失败", elog.FieldErr(err), elog.Int64("uid", uid))
		postMarked = false
	case !postMarked:
		// 频率标记是上一条评论的，不能删
		if contentMarked {
			s.releaseContent(ctx, comment)
		}
		return 0, ErrCommentTooFrequent
	}
	id, err := s.repo.Create(ctx, comment)
	if err != nil {
		if contentMarked {
			s.releaseContent(ctx, comment)
		}
		if postMarked {
			if er := s.guard.ReleasePost(ctx, uid); er != nil {
				s.logger.Error("撤销评论频率标记失败", elog.FieldErr(er), elog.Int64("uid", uid))
			}
		}
		return 0, err
	}
	return id, nil
}

func (s *commentService) releaseContent(ctx context.Context, comment domain.Comment) {
	err := s.guard.ReleaseContent(ctx, comment.User.ID, comment.Biz, comment.BizID, comment.Content)
	if err != nil {
		s.logger.Error("撤销评论内容标记失败", elog.FieldErr(err), elog.Int64("uid", comment.User.ID))
	}
}

func (s *commentService) List(ctx context.Context, biz string, bizID, maxID int64, limit int) (domain.Page, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)

	if maxID <= 0 {
		maxID = math.MaxInt64
	}

	eg.Go(func() error {
		var err error
		// 多查一条判断还有没有下一页
		comments, err = s.repo.FindAncestors(ctx, biz, bizID, maxID, limit+1, s.cfg.MaxSubCnt)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountAncestors(ctx, biz, bizID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Page{}, err
	}
	return s.toPage(ctx, comments, total, limit)
}

func (s *commentService) Replies(ctx context.Context, ancestorID, maxID int64, limit int) (domain.Page, error) {
	var (
		eg      errgroup.Group
		replies []domain.Comment
		total   int64
	)

	if maxID <= 0 {
		maxID = math.MaxInt64
	}

	eg.Go(func() error {
		var err error
		replies, err = s.repo.FindDescendants(ctx, ancestorID, maxID, limit+1)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountDescendants(ctx, ancestorID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Page{}, err
	}
	return s.toPage(ctx, replies, total, limit)
}

func (s *commentService) toPage(ctx context.Context, comments []domain.Comment, total int64, limit int) (domain.Page, error) {
	page := domain.Page{Total: total}
	if len(comments) > limit {
		comments = comments[:limit]
		page.HasMore = true
	}
	err := s.setUserInfo(ctx, comments)
	if err != nil {
		return domain.Page{}, err
	}
	page.Comments = comments
	return page, nil
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	// 获取用户id集合，包括带出来的回复
	uids := make([]int64, 0, len(comments)*2)
	for i := range comments {
		uids = append(uids, comments[i].User.ID)
		for j := range comments[i].Replies {
			uids = append(uids, comments[i].Replies[j].User.ID)
		}
	}

	// 批量查询用户信息
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	fill := func(c *domain.Comment) {
		if p, ok := profiles[c.User.ID]; ok {
			c.User = domain.User{
				ID:       p.Id,
				NickName: p.Nickname,
				Avatar:   p.Avatar,
			}
		}
	}
	// 直接覆盖用户信息
	for i := range comments {
		fill(&comments[i])
		for j := range comments[i].Replies {
			fill(&comments[i].Replies[j])
		}
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}
