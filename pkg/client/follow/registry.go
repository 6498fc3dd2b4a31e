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

package follow

import "sync"

// Registry 当前用户对各个作者的关注状态，所有展示关注按钮的地方共用一份。
// 只在内存里，退出登录的时候清空
type Registry struct {
	mu        sync.RWMutex
	state     map[int64]bool
	nextID    uint64
	observers map[int64]map[uint64]func(bool)
	global    map[uint64]func(authorID int64, following bool)
}

func NewRegistry() *Registry {
	return &Registry{
		state:     make(map[int64]bool),
		observers: make(map[int64]map[uint64]func(bool)),
		global:    make(map[uint64]func(int64, bool)),
	}
}

// Get 第二个返回值表示是否已经知道关注状态
func (r *Registry) Get(authorID int64) (following bool, known bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	following, known = r.state[authorID]
	return
}

func (r *Registry) Set(authorID int64, following bool) {
	r.mu.Lock()
	r.state[authorID] = following
	fns := make([]func(bool), 0, len(r.observers[authorID]))
	for _, fn := range r.observers[authorID] {
		fns = append(fns, fn)
	}
	globals := make([]func(int64, bool), 0, len(r.global))
	for _, fn := range r.global {
		globals = append(globals, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn(following)
	}
	for _, fn := range globals {
		fn(authorID, following)
	}
}

// Subscribe 监听某个作者的关注状态，返回取消监听的函数
func (r *Registry) Subscribe(authorID int64, fn func(following bool)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	m, ok := r.observers[authorID]
	if !ok {
		m = make(map[uint64]func(bool))
		r.observers[authorID] = m
	}
	m[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.observers[authorID], id)
		if len(r.observers[authorID]) == 0 {
			delete(r.observers, authorID)
		}
	}
}

func (r *Registry) SubscribeAll(fn func(authorID int64, following bool)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.global[id] = fn
	return func() {
		r.mu.Lock()
		delete(r.global, id)
		r.mu.Unlock()
	}
}

// Reset 清空所有已知状态，监听者保留。
// 已知状态的作者和有监听者的作者都会收到 false
func (r *Registry) Reset() {
	r.mu.Lock()
	known := make([]int64, 0, len(r.state))
	for id := range r.state {
		known = append(known, id)
	}
	r.state = make(map[int64]bool)
	type notice struct {
		authorID int64
		fn       func(bool)
	}
	notices := make([]notice, 0, len(r.observers))
	for id, m := range r.observers {
		for _, fn := range m {
			notices = append(notices, notice{authorID: id, fn: fn})
		}
	}
	globals := make([]func(int64, bool), 0, len(r.global))
	for _, fn := range r.global {
		globals = append(globals, fn)
	}
	r.mu.Unlock()
	for _, n := range notices {
		n.fn(false)
	}
	for _, id := range known {
		for _, fn := range globals {
			fn(id, false)
		}
	}
}
