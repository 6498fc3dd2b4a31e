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

package event

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
	"github.com/ecodeclub/tastebook/internal/user/internal/service"
)

const followTopic = "follow_events"

type FollowEvent struct {
	Follower int64 `json:"follower"`
	Followee int64 `json:"followee"`
	// follow 或者 unfollow
	Action string `json:"action"`
}

// FollowEventConsumer 根据关注事件维护粉丝数和关注数
type FollowEventConsumer struct {
	*mqx.JSONConsumer[FollowEvent]
	svc service.UserService
}

func NewFollowEventConsumer(svc service.UserService, q mq.MQ) (*FollowEventConsumer, error) {
	res := &FollowEventConsumer{svc: svc}
	c, err := mqx.NewJSONConsumer[FollowEvent](q, followTopic, "user_follow", res.handle)
	if err != nil {
		return nil, err
	}
	res.JSONConsumer = c
	return res, nil
}

func (c *FollowEventConsumer) handle(ctx context.Context, evt FollowEvent) error {
	switch evt.Action {
	case "follow":
		return c.svc.FollowChanged(ctx, evt.Follower, evt.Followee, true)
	case "unfollow":
		return c.svc.FollowChanged(ctx, evt.Follower, evt.Followee, false)
	default:
		return fmt.Errorf("未知的关注事件 %s", evt.Action)
	}
}
