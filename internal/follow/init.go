package follow

import (
	"strconv"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/follow/internal/event"
	"github.com/ecodeclub/tastebook/internal/follow/internal/repository/dao"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.FollowDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMFollowDAO(db)
}

func initProducer(q mq.MQ) mqx.Producer[event.FollowEvent] {
	p, err := mqx.NewGeneralProducer[event.FollowEvent](q, event.FollowTopic,
		mqx.WithKey(func(evt event.FollowEvent) string {
			return strconv.FormatInt(evt.Follower, 10)
		}))
	if err != nil {
		panic(err)
	}
	return p
}
