package ioc

import (
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/user"
)

// initConsumers 关注事件更新用户的计数，浏览、点赞事件更新互动计数
func initConsumers(usrModule *user.Module, intrModule *interactive.Module) []Consumer {
	return []Consumer{
		usrModule.FollowConsumer,
		intrModule.Consumer,
	}
}
