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

package errs

var (
	SystemError = ErrorCode{Code: 515001, Msg: "系统错误"}
	// InvalidReview 评分不在 1 到 5 之间，或者内容为空、太长
	InvalidReview  = ErrorCode{Code: 515002, Msg: "点评内容不合法"}
	ReviewNotFound = ErrorCode{Code: 515003, Msg: "点评不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
