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

package user

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/user/internal/event"
	"github.com/ecodeclub/tastebook/internal/user/internal/repository/dao"
	"github.com/ecodeclub/tastebook/internal/user/internal/service"
	"github.com/ego-component/egorm"
)

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}

func initFollowConsumer(svc service.UserService, q mq.MQ) *event.FollowEventConsumer {
	consumer, err := event.NewFollowEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return consumer
}
