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
	"fmt"

	"github.com/ecodeclub/tastebook/internal/user/internal/domain"
	"github.com/ecodeclub/tastebook/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUserOrPassword = errors.New("用户不存在或者密码不对")
	ErrDuplicateEmail        = repository.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Signup(ctx context.Context, u domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 评论列表、关注列表用来展示昵称和头像
	BatchProfile(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据，目前只有昵称和头像
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// FollowChanged 关注或者取消关注之后更新计数
	FollowChanged(ctx context.Context, follower, followee int64, follow bool) error
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Signup(ctx context.Context, u domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("加密密码失败: %w", err)
	}
	u.Password = string(hash)
	u.SN = shortuuid.New()
	if u.Nickname == "" {
		u.Nickname = u.SN[:4]
	}
	u.Id, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号
	user.SN = ""
	user.Email = ""
	user.Password = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	u.Password = ""
	return u, err
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		u.Password = ""
		res[u.Id] = u
	}
	return res, nil
}

func (svc *userService) FollowChanged(ctx context.Context, follower, followee int64, follow bool) error {
	var delta int64 = 1
	if !follow {
		delta = -1
	}
	return svc.repo.UpdateFollowCnt(ctx, follower, followee, delta)
}
