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

package events

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/service"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
)

const intrTopic = "interactive_events"

// Consumer 按照 Action 分发点赞、取消点赞和浏览事件
type Consumer struct {
	*mqx.JSONConsumer[Event]
	handlerMap map[string]handleFunc
	svc        service.InteractiveService
}

func NewConsumer(svc service.InteractiveService, q mq.MQ) (*Consumer, error) {
	res := &Consumer{
		handlerMap: map[string]handleFunc{
			"like":   likeHandle,
			"unlike": unlikeHandle,
			"view":   viewHandle,
		},
		svc: svc,
	}
	c, err := mqx.NewJSONConsumer[Event](q, intrTopic, "interactive", res.dispatch)
	if err != nil {
		return nil, err
	}
	res.JSONConsumer = c
	return res, nil
}

func (s *Consumer) dispatch(ctx context.Context, evt Event) error {
	handler, ok := s.handlerMap[evt.Action]
	if !ok {
		return fmt.Errorf("未找到 %s 的处理方法", evt.Action)
	}
	return handler(ctx, s.svc, evt)
}
