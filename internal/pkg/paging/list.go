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

package paging

import (
	"context"
	"errors"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrLoading = errors.New("列表正在加载")
	// ErrStale 加载过程中列表被重置了，这一页的数据已经丢弃
	ErrStale = errors.New("列表已经重置")
)

// Page 一页数据。NextCursor 为空表示没有下一页
type Page[T any] struct {
	Items      []T
	NextCursor string
	HasMore    bool
}

// Fetcher 按照游标拉取一页数据，空游标表示第一页
type Fetcher[T any] func(ctx context.Context, cursor string) (Page[T], error)

// OnError 加载失败时的回调，通常用来弹出错误提示
type OnError func(err error)

// List 累积分页加载的结果
type List[T any, K comparable] struct {
	name    string
	fetch   Fetcher[T]
	key     func(T) K
	onError OnError
	logger  *elog.Component

	mu      sync.RWMutex
	gen     uint64
	loading bool
	items   []T
	seen    map[K]struct{}
	cursor  string
	hasMore bool
	started bool
}

type Option[T any, K comparable] func(l *List[T, K])

// WithErrorNotice 加载失败的时候调用 fn。默认只记录日志
func WithErrorNotice[T any, K comparable](fn OnError) Option[T, K] {
	return func(l *List[T, K]) {
		l.onError = fn
	}
}

func WithLogger[T any, K comparable](logger *elog.Component) Option[T, K] {
	return func(l *List[T, K]) {
		l.logger = logger
	}
}

func NewList[T any, K comparable](name string, fetch Fetcher[T], key func(T) K, opts ...Option[T, K]) *List[T, K] {
	l := &List[T, K]{
		name:    name,
		fetch:   fetch,
		key:     key,
		logger:  elog.DefaultLogger,
		seen:    make(map[K]struct{}),
		hasMore: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load 加载 cursor 指向的一页。空 cursor 代表重新开始，之前累积的数据会被清空
func (l *List[T, K]) Load(ctx context.Context, cursor string) (Page[T], error) {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return Page[T]{}, ErrLoading
	}
	l.loading = true
	gen := l.gen
	l.mu.Unlock()

	page, err := l.fetch(ctx, cursor)

	l.mu.Lock()
	if gen != l.gen {
		// loading 已经属于重置之后的加载
		l.mu.Unlock()
		return Page[T]{}, ErrStale
	}
	l.loading = false
	if err != nil {
		l.mu.Unlock()
		l.logger.Error("加载列表失败",
			elog.String("list", l.name),
			elog.String("cursor", cursor),
			elog.FieldErr(err))
		if l.onError != nil {
			l.onError(err)
		}
		return Page[T]{}, err
	}
	if cursor == "" {
		l.items = nil
		l.seen = make(map[K]struct{}, len(page.Items))
	}
	added := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		k := l.key(item)
		if _, ok := l.seen[k]; ok {
			continue
		}
		l.seen[k] = struct{}{}
		l.items = append(l.items, item)
		added = append(added, item)
	}
	l.started = true
	l.cursor = page.NextCursor
	l.hasMore = page.HasMore && page.NextCursor != ""
	l.mu.Unlock()
	page.Items = added
	return page, nil
}

// LoadMore 从上一次返回的游标继续加载。没有更多数据的时候什么也不做
func (l *List[T, K]) LoadMore(ctx context.Context) (Page[T], error) {
	l.mu.RLock()
	cursor, hasMore, started := l.cursor, l.hasMore, l.started
	l.mu.RUnlock()
	if !started {
		return l.Load(ctx, "")
	}
	if !hasMore {
		return Page[T]{}, nil
	}
	return l.Load(ctx, cursor)
}

// Reset 父级上下文发生变化，例如切换到另外一个用户。
// 还没有返回的加载结果会被丢弃
func (l *List[T, K]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.loading = false
	l.items = nil
	l.seen = make(map[K]struct{})
	l.cursor = ""
	l.hasMore = true
	l.started = false
}

func (l *List[T, K]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]T, len(l.items))
	copy(res, l.items)
	return res
}

func (l *List[T, K]) HasMore() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasMore
}

func (l *List[T, K]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}
