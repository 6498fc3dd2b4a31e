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

package review

import (
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/interactive"
	"github.com/ecodeclub/tastebook/internal/pkg/mqx"
	"github.com/ecodeclub/tastebook/internal/review/internal/repository/dao"
	"github.com/ego-component/egorm"
)

// 点赞、浏览都通过这个 topic 交给 interactive 模块处理
const intrTopic = "interactive_events"

var daoOnce = sync.Once{}

func initReviewDao(db *egorm.Component) dao.ReviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewReviewDAO(db)
}

func initIntrProducer(q mq.MQ) mqx.Producer[interactive.Event] {
	producer, err := mqx.NewGeneralProducer[interactive.Event](q, intrTopic,
		mqx.WithKey(func(evt interactive.Event) string {
			return fmt.Sprintf("%s:%d", evt.Biz, evt.BizId)
		}))
	if err != nil {
		panic(err)
	}
	return producer
}
