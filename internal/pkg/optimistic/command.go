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

package optimistic

import (
	"context"
	"errors"
)

var (
	// ErrInFlight 同一个对象上已经有一个操作没有结束
	ErrInFlight = errors.New("操作进行中")
	// ErrScopeClosed 发起操作的组件已经销毁，结果被丢弃
	ErrScopeClosed = errors.New("组件已经销毁")
)

// Command 乐观更新命令。
// Apply 先在本地修改状态并返回修改前的快照，Remote 使用这个快照决定发什么请求，
// 成功之后用服务端的结果覆盖本地状态（Commit），失败就恢复快照（Revert）。
type Command[S any, R any] struct {
	Apply  func() S
	Remote func(ctx context.Context, snapshot S) (R, error)
	Commit func(res R)
	Revert func(snapshot S, err error)
}

// Run 执行命令。
// 如果 ctx 在远程调用期间被取消（一般是组件销毁），Commit 和 Revert 都不会执行。
func (c Command[S, R]) Run(ctx context.Context) (R, error) {
	snapshot := c.Apply()
	res, err := c.Remote(ctx, snapshot)
	if ctx.Err() != nil && errors.Is(context.Cause(ctx), ErrScopeClosed) {
		var zero R
		return zero, ErrScopeClosed
	}
	if err != nil {
		if c.Revert != nil {
			c.Revert(snapshot, err)
		}
		return res, err
	}
	if c.Commit != nil {
		c.Commit(res)
	}
	return res, nil
}
