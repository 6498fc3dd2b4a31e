package review

import (
	"github.com/ecodeclub/tastebook/internal/review/internal/domain"
	"github.com/ecodeclub/tastebook/internal/review/internal/service"
	"github.com/ecodeclub/tastebook/internal/review/internal/web"
)

type Hdl = web.Handler

type Service = service.ReviewSvc

type Review = domain.Review

type Module struct {
	Hdl *Hdl
	Svc Service
}
