//go:build e2e

package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/tastebook/internal/comment"
	"github.com/ecodeclub/tastebook/internal/comment/internal/web"
	"github.com/ecodeclub/tastebook/internal/test"
	testioc "github.com/ecodeclub/tastebook/internal/test/ioc"
	"github.com/ecodeclub/tastebook/internal/user"
	usermocks "github.com/ecodeclub/tastebook/internal/user/mocks"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = 4096

type CommentTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	cache  ecache.Cache
	svc    comment.Service
}

func (s *CommentTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
	ctrl := gomock.NewController(s.T())
	usrSvc := usermocks.NewMockUserService(ctrl)
	usrSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) (map[int64]user.User, error) {
			res := make(map[int64]user.User, len(ids))
			for _, id := range ids {
				res[id] = user.User{Id: id, Nickname: fmt.Sprintf("食客%d", id)}
			}
			return res, nil
		}).AnyTimes()
	mod := comment.InitModule(s.db, s.cache, usrSvc)
	s.svc = mod.Svc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mod.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *CommentTestSuite) TearDownTest() {
	// 评论表有自引用的外键，不能 TRUNCATE
	err := s.db.Exec("DELETE FROM `comments`").Error
	require.NoError(s.T(), err)
	contents := []string{"牛肉面很好吃", "重复的内容", "第一条", "第二条", "回复一个不存在的评论",
		"要删掉的评论", "别人的评论", "回复", "这家店怎么样", "还不错", "同意", "服务一般"}
	keys := make([]string, 0, 8*(len(contents)+1))
	for _, commenter := range []int64{uid, 1, 2, 3, 4, 5, 6} {
		keys = append(keys, fmt.Sprintf("comment:flood:%d", commenter))
		for _, content := range contents {
			sum := sha256.Sum256([]byte(content))
			keys = append(keys, fmt.Sprintf("comment:dup:%d:review:1:%s", commenter, hex.EncodeToString(sum[:])))
		}
	}
	_, err = s.cache.Delete(context.Background(), keys...)
	require.NoError(s.T(), err)
}

func (s *CommentTestSuite) create(t *testing.T, commenter int64, parentID int64, content string) int64 {
	id, err := s.svc.Create(context.Background(), comment.Comment{
		User:     comment.User{ID: commenter},
		Biz:      "review",
		BizID:    1,
		ParentID: parentID,
		Content:  content,
	})
	require.NoError(t, err)
	return id
}

func (s *CommentTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.CreateRequest
		wantCode int
		after    func(t *testing.T, resp test.Result[web.CreateResponse])
	}{
		{
			name:   "发表成功",
			before: func(t *testing.T) {},
			req: web.CreateRequest{Comment: web.Comment{
				Biz: "review", BizID: 1, Content: "牛肉面很好吃",
			}},
			after: func(t *testing.T, resp test.Result[web.CreateResponse]) {
				assert.Equal(t, "approved", resp.Data.Status)
				assert.True(t, resp.Data.ID > 0)
				page, err := s.svc.List(context.Background(), "review", 1, 0, 10)
				require.NoError(t, err)
				require.Len(t, page.Comments, 1)
				assert.Equal(t, "牛肉面很好吃", page.Comments[0].Content)
				assert.Equal(t, fmt.Sprintf("食客%d", uid), page.Comments[0].User.NickName)
			},
		},
		{
			name:   "空内容",
			before: func(t *testing.T) {},
			req: web.CreateRequest{Comment: web.Comment{
				Biz: "review", BizID: 1, Content: "   ",
			}},
			wantCode: 513002,
			after:    func(t *testing.T, resp test.Result[web.CreateResponse]) {},
		},
		{
			name: "重复评论",
			before: func(t *testing.T) {
				s.create(t, uid, 0, "重复的内容")
				// 去掉频率限制，只验证重复
				_, err := s.cache.Delete(context.Background(), fmt.Sprintf("comment:flood:%d", uid))
				require.NoError(t, err)
			},
			req: web.CreateRequest{Comment: web.Comment{
				Biz: "review", BizID: 1, Content: "重复的内容",
			}},
			wantCode: 513003,
			after:    func(t *testing.T, resp test.Result[web.CreateResponse]) {},
		},
		{
			name: "评论过于频繁",
			before: func(t *testing.T) {
				s.create(t, uid, 0, "第一条")
			},
			req: web.CreateRequest{Comment: web.Comment{
				Biz: "review", BizID: 1, Content: "第二条",
			}},
			wantCode: 513004,
			after: func(t *testing.T, resp test.Result[web.CreateResponse]) {
				page, err := s.svc.List(context.Background(), "review", 1, 0, 10)
				require.NoError(t, err)
				assert.Len(t, page.Comments, 1)
			},
		},
		{
			name:   "父评论不存在",
			before: func(t *testing.T) {},
			req: web.CreateRequest{Comment: web.Comment{
				Biz: "review", BizID: 1, ParentID: 9999999, Content: "回复一个不存在的评论",
			}},
			wantCode: 513005,
			after:    func(t *testing.T, resp test.Result[web.CreateResponse]) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/comment/", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.CreateResponse]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			tc.after(t, resp)
			s.TearDownTest()
		})
	}
}

func (s *CommentTestSuite) TestReplies() {
	t := s.T()
	ancestor := s.create(t, 1, 0, "这家店怎么样")
	child := s.create(t, 2, ancestor, "还不错")
	grandChild := s.create(t, 3, child, "同意")
	latest := s.create(t, 4, ancestor, "服务一般")

	var (
		cursor int64
		got    []int64
	)
	for {
		req, err := http.NewRequest(http.MethodPost, "/comment/replies",
			iox.NewJSONReader(web.RepliesRequest{AncestorID: ancestor, MaxID: cursor, Limit: 2}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.CommentList]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		resp := recorder.MustScan().Data
		assert.Equal(t, int64(3), resp.Total)
		for _, c := range resp.List {
			assert.Equal(t, ancestor, c.AncestorID)
			got = append(got, c.ID)
		}
		if !resp.HasMore {
			break
		}
		cursor = resp.List[len(resp.List)-1].ID
	}
	// 后评论的在前面
	assert.Equal(t, []int64{latest, grandChild, child}, got)

	req, err := http.NewRequest(http.MethodPost, "/comment/list",
		iox.NewJSONReader(web.ListRequest{Biz: "review", BizID: 1, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan().Data
	require.Len(t, list.List, 1)
	assert.Equal(t, ancestor, list.List[0].ID)
	assert.Equal(t, "食客1", list.List[0].User.Nickname)
	// 只带直接回复
	assert.Len(t, list.List[0].Replies, 2)
}

func (s *CommentTestSuite) TestDelete() {
	t := s.T()
	mine := s.create(t, uid, 0, "要删掉的评论")
	others := s.create(t, 5, 0, "别人的评论")
	reply := s.create(t, 6, mine, "回复")

	for _, tc := range []struct {
		name     string
		id       int64
		wantCode int
	}{
		{name: "删除别人的评论", id: others, wantCode: 513005},
		{name: "删除自己的评论", id: mine},
	} {
		req, err := http.NewRequest(http.MethodPost, "/comment/delete", iox.NewJSONReader(web.DeleteRequest{ID: tc.id}))
		require.NoError(t, err, tc.name)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[any]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code, tc.name)
		assert.Equal(t, tc.wantCode, recorder.MustScan().Code, tc.name)
	}

	page, err := s.svc.Replies(context.Background(), mine, 0, 10)
	require.NoError(t, err)
	// 回复跟着一起删掉了
	assert.Empty(t, page.Comments)
	_, err = s.svc.Replies(context.Background(), reply, 0, 10)
	require.NoError(t, err)
}

func TestComment(t *testing.T) {
	suite.Run(t, new(CommentTestSuite))
}
