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

package web

import "github.com/ecodeclub/tastebook/internal/interactive/internal/domain"

type LikeReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
	// true => 点赞
	// false => 取消点赞
	Liked bool `json:"liked"`
}

// LikeResp 操作之后服务端的状态，客户端以这个为准
type LikeResp struct {
	Liked   bool `json:"liked"`
	LikeCnt int  `json:"likeCnt"`
}

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type BatchGetCntReq struct {
	Biz    string  `json:"biz"`
	BizIds []int64 `json:"bizIds"`
}

type Interactive struct {
	ID      int64 `json:"id"`
	LikeCnt int   `json:"likeCnt"`
	ViewCnt int   `json:"viewCnt"`
	// 是否点赞过
	Liked bool `json:"liked"`
}

func newInteractive(intr domain.Interactive) Interactive {
	return Interactive{
		ID:      intr.BizId,
		LikeCnt: intr.LikeCnt,
		ViewCnt: intr.ViewCnt,
		Liked:   intr.Liked,
	}
}

type BatchGetCntResp struct {
	InteractiveMap map[int64]Interactive `json:"interactiveMap"`
}
