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
	"context"
	"strconv"

	"github.com/ecodeclub/tastebook/internal/pkg/paging"
)

// NewRepliesList 一条评论下面的全部回复，按照 id 游标继续加载
func NewRepliesList(remote Remote, ancestorID int64, limit int, opts ...paging.Option[Reply, string]) *paging.List[Reply, string] {
	fetch := func(ctx context.Context, cursor string) (paging.Page[Reply], error) {
		var maxID int64
		if cursor != "" {
			var err error
			maxID, err = strconv.ParseInt(cursor, 10, 64)
			if err != nil {
				return paging.Page[Reply]{}, err
			}
		}
		list, err := remote.FetchCommentReplies(ctx, ancestorID, maxID, limit)
		if err != nil {
			return paging.Page[Reply]{}, err
		}
		page := paging.Page[Reply]{
			Items:   make([]Reply, 0, len(list.List)),
			HasMore: list.HasMore,
		}
		for _, c := range list.List {
			page.Items = append(page.Items, fromAPI(c))
		}
		if n := len(list.List); n > 0 && list.HasMore {
			page.NextCursor = strconv.FormatInt(list.List[n-1].ID, 10)
		}
		return page, nil
	}
	return paging.NewList[Reply, string]("replies-"+strconv.FormatInt(ancestorID, 10), fetch,
		func(r Reply) string {
			return r.ID
		}, opts...)
}
