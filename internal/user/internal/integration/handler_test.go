//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/tastebook/internal/test"
	testioc "github.com/ecodeclub/tastebook/internal/test/ioc"
	"github.com/ecodeclub/tastebook/internal/user"
	"github.com/ecodeclub/tastebook/internal/user/internal/event"
	"github.com/ecodeclub/tastebook/internal/user/internal/repository/dao"
	"github.com/ecodeclub/tastebook/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	mod    *user.Module
	q      mq.MQ
}

func (s *HandleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	s.mod = user.InitModule(s.db, testioc.InitCache(), s.q)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	s.mod.Hdl.PublicRoutes(server.Engine)
	s.mod.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandleTestSuite) TestSignupAndLogin() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		path     string
		req      any
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name:     "注册成功",
			before:   func(t *testing.T) {},
			path:     "/users/signup",
			req:      web.SignupReq{Email: "foo@tastebook.com", Password: "hello#world", Nickname: "小明"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{Data: web.Profile{Nickname: "小明"}},
		},
		{
			name: "邮箱冲突",
			before: func(t *testing.T) {
				s.signup(t, "foo@tastebook.com", "hello#world")
			},
			path:     "/users/signup",
			req:      web.SignupReq{Email: "foo@tastebook.com", Password: "hello#world"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{Code: 501003, Msg: "邮箱已经注册"},
		},
		{
			name:     "邮箱格式不对",
			before:   func(t *testing.T) {},
			path:     "/users/signup",
			req:      web.SignupReq{Email: "foo", Password: "hello#world"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{Code: 501002, Msg: "输入错误"},
		},
		{
			name: "登录成功",
			before: func(t *testing.T) {
				s.signup(t, "bar@tastebook.com", "hello#world")
			},
			path:     "/users/login",
			req:      web.LoginReq{Email: "bar@tastebook.com", Password: "hello#world"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{Data: web.Profile{Nickname: "小红"}},
		},
		{
			name: "密码错误",
			before: func(t *testing.T) {
				s.signup(t, "bar@tastebook.com", "hello#world")
			},
			path:     "/users/login",
			req:      web.LoginReq{Email: "bar@tastebook.com", Password: "hello"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{Code: 501004, Msg: "用户名或者密码错误"},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, tc.path, iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			// id 和 sn 是生成的
			resp.Data.Id = 0
			resp.Data.SN = ""
			assert.Equal(t, tc.wantResp, resp)
			s.TearDownTest()
		})
	}
}

func (s *HandleTestSuite) signup(t *testing.T, email, password string) {
	_, err := s.mod.Svc.Signup(context.Background(), user.User{
		Email:    email,
		Password: password,
		Nickname: "小红",
	})
	require.NoError(t, err)
}

func (s *HandleTestSuite) TestProfileWithFollowCnt() {
	t := s.T()
	err := s.db.Create(&dao.User{Id: uid, Email: "me@tastebook.com", Nickname: "我", SN: "sn-123"}).Error
	require.NoError(t, err)
	err = s.db.Create(&dao.User{Id: 456, Email: "you@tastebook.com", Nickname: "你", SN: "sn-456"}).Error
	require.NoError(t, err)

	producer, err := s.q.Producer("follow_events")
	require.NoError(t, err)
	for _, evt := range []event.FollowEvent{
		{Follower: uid, Followee: 456, Action: "follow"},
		{Follower: 456, Followee: uid, Action: "follow"},
		{Follower: 456, Followee: uid, Action: "unfollow"},
	} {
		val, err := json.Marshal(evt)
		require.NoError(t, err)
		_, err = producer.Produce(context.Background(), &mq.Message{Value: val})
		require.NoError(t, err)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = s.mod.FollowConsumer.Consume(ctx)
		cancel()
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, web.Profile{
		Id:          uid,
		Nickname:    "我",
		SN:          "sn-123",
		FollowerCnt: 0,
		FolloweeCnt: 1,
	}, recorder.MustScan().Data)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandleTestSuite))
}
