package follow

import (
	"github.com/ecodeclub/tastebook/internal/follow/internal/domain"
	"github.com/ecodeclub/tastebook/internal/follow/internal/event"
	"github.com/ecodeclub/tastebook/internal/follow/internal/service"
	"github.com/ecodeclub/tastebook/internal/follow/internal/web"
)

type Handler = web.Handler

type Service = service.FollowService

type FollowStatistic = domain.FollowStatistic

type FollowEvent = event.FollowEvent

type Module struct {
	Hdl *Handler
	Svc Service
}
