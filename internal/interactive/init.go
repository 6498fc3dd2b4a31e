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

package interactive

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/events"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/tastebook/internal/interactive/internal/service"
	"github.com/ego-component/egorm"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.InteractiveDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewInteractiveDAO(db)
}

func initConsumer(svc service.InteractiveService, q mq.MQ) *events.Consumer {
	consumer, err := events.NewConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return consumer
}
