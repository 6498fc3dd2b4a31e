//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/tastebook/internal/comment"
	"github.com/ecodeclub/tastebook/internal/follow"
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/review"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		interactive.InitModule,
		follow.InitModule,
		comment.InitModule,
		review.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "Svc"),
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		wire.FieldsOf(new(*follow.Module), "Hdl"),
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		wire.FieldsOf(new(*review.Module), "Hdl"),
		initConsumers,
		initGinxServer)
	return new(App), nil
}
