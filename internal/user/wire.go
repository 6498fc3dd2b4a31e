//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/user/internal/repository"
	"github.com/ecodeclub/tastebook/internal/user/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/user/internal/service"
	"github.com/ecodeclub/tastebook/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(web.NewHandler,
	cache.NewUserECache,
	initDAO,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *Module {
	wire.Build(
		ProviderSet,
		initFollowConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
