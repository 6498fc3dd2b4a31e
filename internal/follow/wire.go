//go:build wireinject

package follow

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/follow/internal/service"
	"github.com/ecodeclub/tastebook/internal/follow/internal/web"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, usrSvc user.UserService) *Module {
	wire.Build(
		initDAO,
		cache.NewFollowECache,
		repository.NewCachedFollowRepository,
		initProducer,
		service.NewFollowService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
