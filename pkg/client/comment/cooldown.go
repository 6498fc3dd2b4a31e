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

package comment

import (
	"context"
	"sync"
	"time"
)

const (
	ShortCooldown = 5 * time.Second
	LongCooldown  = 30 * time.Second
)

// Cooldown 两次发表之间的冷却时间，按整秒计算
type Cooldown struct {
	mu       sync.Mutex
	deadline time.Time
	now      func() time.Time
}

func NewCooldown() *Cooldown {
	return &Cooldown{now: time.Now}
}

// newCooldownWithClock 测试用
func newCooldownWithClock(now func() time.Time) *Cooldown {
	return &Cooldown{now: now}
}

func (c *Cooldown) Start(d time.Duration) {
	c.mu.Lock()
	c.deadline = c.now().Add(d)
	c.mu.Unlock()
}

// Remaining 剩余秒数，向上取整。为 0 表示可以发表
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	left := c.deadline.Sub(c.now())
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (c *Cooldown) Reset() {
	c.mu.Lock()
	c.deadline = time.Time{}
	c.mu.Unlock()
}

// Run 每秒回调一次剩余秒数，直到冷却结束或者 ctx 被取消
func (c *Cooldown) Run(ctx context.Context, onTick func(remaining int)) {
	remaining := c.Remaining()
	onTick(remaining)
	if remaining == 0 {
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining = c.Remaining()
			onTick(remaining)
			if remaining == 0 {
				return
			}
		}
	}
}
