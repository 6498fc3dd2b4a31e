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

package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const baseURL = "http://tastebook.test"

type terminator struct {
	cnt int
}

func (t *terminator) ForceSignOut() {
	t.cnt++
}

type likeRes struct {
	Liked   bool  `json:"liked"`
	LikeCnt int64 `json:"likeCnt"`
}

func newClient(t *testing.T) (*Client, *terminator) {
	term := &terminator{}
	c := NewClient(Config{BaseURL: baseURL}, term)
	gock.InterceptClient(c.HTTPClient())
	t.Cleanup(func() {
		gock.RestoreClient(c.HTTPClient())
		gock.Off()
	})
	return c, term
}

func TestClient_Do(t *testing.T) {
	testCases := []struct {
		name     string
		before   func()
		token    string
		wantRes  likeRes
		wantErr  error
		wantTerm int
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "成功",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					MatchHeader("Authorization", "Bearer token").
					Reply(http.StatusOK).
					JSON(map[string]any{"code": 0, "msg": "OK", "data": map[string]any{"liked": true, "likeCnt": 13}})
			},
			token:   "token",
			wantRes: likeRes{Liked: true, LikeCnt: 13},
		},
		{
			name: "token 失效",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					Reply(http.StatusUnauthorized).
					JSON(map[string]any{"code": 401001, "msg": "登录已失效"})
			},
			token:    "expired",
			wantErr:  ErrSessionTerminated,
			wantTerm: 1,
		},
		{
			name: "403 但不是 token 失效",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					Reply(http.StatusForbidden).
					JSON(map[string]any{"code": 403100, "msg": "无权限"})
			},
			token: "token",
			assertFn: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusForbidden, apiErr.Status)
				assert.Equal(t, 403100, apiErr.Code)
			},
		},
		{
			name: "业务错误码",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					Reply(http.StatusOK).
					JSON(map[string]any{"code": 514001, "msg": "系统错误"})
			},
			assertFn: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, 514001, apiErr.Code)
				assert.Equal(t, "系统错误", apiErr.Msg)
			},
		},
		{
			name: "500",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					Reply(http.StatusInternalServerError).
					BodyString("bad gateway")
			},
			assertFn: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			},
		},
		{
			name: "响应不是 JSON",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					Reply(http.StatusOK).
					BodyString("<html>hello</html>")
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "超时",
			before: func() {
				gock.New(baseURL).Post("/intr/like").
					ReplyError(context.DeadlineExceeded)
			},
			wantErr: ErrTimeout,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, term := newClient(t)
			tc.before()
			var res likeRes
			err := c.Post(context.Background(), "/intr/like", tc.token,
				map[string]any{"biz": "review", "bizId": 1, "liked": true}, &res)
			if tc.assertFn != nil {
				tc.assertFn(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Equal(t, tc.wantRes, res)
			assert.Equal(t, tc.wantTerm, term.cnt)
		})
	}
}

func TestClient_NilOut(t *testing.T) {
	c, _ := newClient(t)
	gock.New(baseURL).Post("/follow/follow").
		Reply(http.StatusOK).
		JSON(map[string]any{"code": 0, "msg": "OK"})
	err := c.Post(context.Background(), "/follow/follow", "token", map[string]any{"followee": 2}, nil)
	require.NoError(t, err)
	assert.True(t, gock.IsDone())
}

func TestLoadConfig(t *testing.T) {
	conf := `
tbclient:
  baseURL: "http://localhost:8080"
  timeout: 3s
  invalidTokenCode: 401001
`
	require.NoError(t, econf.LoadFromReader(strings.NewReader(conf), yaml.Unmarshal))
	cfg, err := LoadConfig("tbclient")
	require.NoError(t, err)
	assert.Equal(t, Config{
		BaseURL:          "http://localhost:8080",
		Timeout:          3 * time.Second,
		InvalidTokenCode: 401001,
	}, cfg)
}
