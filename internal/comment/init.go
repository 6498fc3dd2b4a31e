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

package comment

import (
	"sync"

	"github.com/ecodeclub/tastebook/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/tastebook/internal/comment/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.CommentDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewCommentGORMDAO(db)
}

// initConfig 没有配置的项使用默认值
func initConfig() service.Config {
	cfg := service.DefaultConfig()
	if econf.Get("comment") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("comment", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
