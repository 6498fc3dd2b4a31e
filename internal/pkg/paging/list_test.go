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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

func itemKey(i item) int64 {
	return i.ID
}

func TestList_Load(t *testing.T) {
	pages := map[string]Page[item]{
		"": {
			Items:      []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
			NextCursor: "2",
			HasMore:    true,
		},
		// 第二页和第一页有重叠
		"2": {
			Items:      []item{{ID: 2, Name: "b"}, {ID: 3, Name: "c"}},
			NextCursor: "3",
			HasMore:    false,
		},
	}
	calls := 0
	l := NewList[item, int64]("test", func(ctx context.Context, cursor string) (Page[item], error) {
		calls++
		return pages[cursor], nil
	}, itemKey)

	page, err := l.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.True(t, l.HasMore())

	page, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 3, Name: "c"}}, page.Items)
	assert.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}, l.Items())
	assert.False(t, l.HasMore())

	// 没有更多了，不会再请求
	_, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// 空游标重新开始
	_, err = l.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, l.Items())
}

func TestList_Dedupe(t *testing.T) {
	// 两页返回完全一样的数据
	l := NewList[item, int64]("dup", func(ctx context.Context, cursor string) (Page[item], error) {
		items := make([]item, 0, 5)
		for i := 1; i <= 5; i++ {
			items = append(items, item{ID: int64(i), Name: strconv.Itoa(i)})
		}
		return Page[item]{Items: items, NextCursor: "next", HasMore: true}, nil
	}, itemKey)
	_, err := l.Load(context.Background(), "")
	require.NoError(t, err)
	page, err := l.Load(context.Background(), "next")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	ids := make(map[int64]int)
	for _, it := range l.Items() {
		ids[it.ID]++
	}
	assert.Len(t, ids, 5)
	for _, cnt := range ids {
		assert.Equal(t, 1, cnt)
	}
}

func TestList_Error(t *testing.T) {
	fail := false
	var notices []error
	l := NewList[item, int64]("err", func(ctx context.Context, cursor string) (Page[item], error) {
		if fail {
			return Page[item]{}, errors.New("mock error")
		}
		return Page[item]{Items: []item{{ID: 1}}, NextCursor: "1", HasMore: true}, nil
	}, itemKey, WithErrorNotice[item, int64](func(err error) {
		notices = append(notices, err)
	}))
	_, err := l.Load(context.Background(), "")
	require.NoError(t, err)

	fail = true
	_, err = l.LoadMore(context.Background())
	assert.Error(t, err)
	// 已有的数据保留
	assert.Equal(t, []item{{ID: 1}}, l.Items())
	assert.Len(t, notices, 1)
	assert.False(t, l.Loading())
	assert.True(t, l.HasMore())
}

func TestList_Loading(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	l := NewList[item, int64]("loading", func(ctx context.Context, cursor string) (Page[item], error) {
		close(entered)
		<-release
		return Page[item]{}, nil
	}, itemKey)
	done := make(chan error)
	go func() {
		_, err := l.Load(context.Background(), "")
		done <- err
	}()
	<-entered
	_, err := l.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrLoading)
	close(release)
	assert.NoError(t, <-done)
	assert.False(t, l.Loading())
}

func TestList_ResetDuringLoad(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	parent := "A"
	data := map[string]map[string]Page[item]{
		"A": {
			"":  {Items: []item{{ID: 1}, {ID: 2}}, NextCursor: "2", HasMore: true},
			"2": {Items: []item{{ID: 100}, {ID: 101}}, NextCursor: "101", HasMore: true},
		},
		"B": {
			"": {Items: []item{{ID: 7}}},
		},
	}
	var notices []error
	l := NewList[item, int64]("reset", func(ctx context.Context, cursor string) (Page[item], error) {
		p := parent
		if p == "A" && cursor == "2" {
			close(entered)
			<-release
		}
		return data[p][cursor], nil
	}, itemKey, WithErrorNotice[item, int64](func(err error) {
		notices = append(notices, err)
	}))
	_, err := l.Load(context.Background(), "")
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		_, err := l.LoadMore(context.Background())
		done <- err
	}()
	<-entered

	// 切换到 B，旧的加载还没有返回
	parent = "B"
	l.Reset()
	assert.False(t, l.Loading())
	page, err := l.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 7}}, page.Items)

	close(release)
	assert.ErrorIs(t, <-done, ErrStale)
	assert.Equal(t, []item{{ID: 7}}, l.Items())
	assert.False(t, l.HasMore())
	assert.False(t, l.Loading())
	assert.Empty(t, notices)
}
