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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// JSONConsumer 反序列化 topic 上的 JSON 事件并交给 handle 处理
type JSONConsumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   func(ctx context.Context, evt T) error
	logger   *elog.Component
}

func NewJSONConsumer[T any](q mq.MQ, topic, groupID string,
	handle func(ctx context.Context, evt T) error) (*JSONConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s group=%s 的消费者失败: %w", topic, groupID, err)
	}
	return &JSONConsumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger,
	}, nil
}

// Consume 消费一条消息
func (c *JSONConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.handle(ctx, evt)
	if err != nil {
		return fmt.Errorf("处理消息失败 event=%#v: %w", evt, err)
	}
	return nil
}

// Start 在后台一直消费，直到 ctx 被取消。处理失败的消息只记录日志
func (c *JSONConsumer[T]) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			err := c.Consume(ctx)
			if err != nil && ctx.Err() == nil {
				c.logger.Error("消费事件失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *JSONConsumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}
