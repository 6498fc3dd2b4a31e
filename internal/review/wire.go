//go:build wireinject

package review

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository/cache"
	"github.com/ecodeclub/tastebook/internal/review/internal/service"
	"github.com/ecodeclub/tastebook/internal/review/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	intrModule *interactive.Module,
	q mq.MQ,
	sp session.Provider,
	ec ecache.Cache,
) *Module {
	wire.Build(
		initReviewDao,
		initIntrProducer,
		cache.NewReviewCache,
		repository.NewReviewRepo,
		service.NewReviewSvc,
		web.NewHandler,
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
