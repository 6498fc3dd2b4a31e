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
	"sync"
)

// Guard 按 key 记录正在进行中的操作，同一个 key 同时只允许一个
type Guard[K comparable] struct {
	mu     sync.Mutex
	flying map[K]struct{}
}

func NewGuard[K comparable]() *Guard[K] {
	return &Guard[K]{flying: make(map[K]struct{})}
}

func (g *Guard[K]) TryAcquire(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.flying[key]; ok {
		return false
	}
	g.flying[key] = struct{}{}
	return true
}

func (g *Guard[K]) Release(key K) {
	g.mu.Lock()
	delete(g.flying, key)
	g.mu.Unlock()
}

func (g *Guard[K]) Busy(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.flying[key]
	return ok
}

// Scope 组件的生命周期。组件销毁的时候调用 Close，
// 所有用 Context() 发起的操作都不会再修改组件的状态
type Scope struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancelCause(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

func (s *Scope) Close() {
	s.cancel(ErrScopeClosed)
}

func (s *Scope) Closed() bool {
	return s.ctx.Err() != nil
}
