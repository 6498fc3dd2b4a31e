package user

import (
	"github.com/ecodeclub/tastebook/internal/user/internal/domain"
	"github.com/ecodeclub/tastebook/internal/user/internal/errs"
	"github.com/ecodeclub/tastebook/internal/user/internal/event"
	"github.com/ecodeclub/tastebook/internal/user/internal/service"
	"github.com/ecodeclub/tastebook/internal/user/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type User = domain.User

// UserService 方便测试
type UserService = service.UserService

type FollowEventConsumer = event.FollowEventConsumer

// InvalidTokenCode 登录态失效的错误码
var InvalidTokenCode = errs.InvalidToken.Code

type Module struct {
	Hdl            *Handler
	Svc            UserService
	FollowConsumer *FollowEventConsumer
}
