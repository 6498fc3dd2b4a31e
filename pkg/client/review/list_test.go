package review

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/tastebook/internal/pkg/paging"
	"github.com/ecodeclub/tastebook/pkg/client/api"
	reviewmocks "github.com/ecodeclub/tastebook/pkg/client/review/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ids(rs []api.Review) []int64 {
	res := make([]int64, 0, len(rs))
	for _, r := range rs {
		res = append(res, r.ID)
	}
	return res
}

func TestNewUserReviewsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := reviewmocks.NewMockRemote(ctrl)
	gomock.InOrder(
		remote.EXPECT().UserReviews(gomock.Any(), int64(1), 0, 2).
			Return(api.ReviewList{List: []api.Review{{ID: 9}, {ID: 8}}, HasMore: true}, nil),
		// 第一页之后有人发表了新的点评，offset 往后错了一位
		remote.EXPECT().UserReviews(gomock.Any(), int64(1), 2, 2).
			Return(api.ReviewList{List: []api.Review{{ID: 8}, {ID: 7}}, HasMore: true}, nil),
		remote.EXPECT().UserReviews(gomock.Any(), int64(1), 4, 2).
			Return(api.ReviewList{List: []api.Review{{ID: 6}}}, nil),
		// 重新加载会清空之前的数据
		remote.EXPECT().UserReviews(gomock.Any(), int64(1), 0, 2).
			Return(api.ReviewList{List: []api.Review{{ID: 10}}}, nil),
	)
	l := NewUserReviewsList(remote, 1, 2)
	for l.HasMore() {
		_, err := l.LoadMore(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{9, 8, 7, 6}, ids(l.Items()))

	_, err := l.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, ids(l.Items()))
}

func TestNewUserReviewsList_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := reviewmocks.NewMockRemote(ctrl)
	remote.EXPECT().UserReviews(gomock.Any(), int64(1), 0, 2).
		Return(api.ReviewList{}, errors.New("network"))
	var notices []error
	l := NewUserReviewsList(remote, 1, 2, paging.WithErrorNotice[api.Review, int64](func(err error) {
		notices = append(notices, err)
	}))
	_, err := l.LoadMore(context.Background())
	assert.Error(t, err)
	assert.Len(t, notices, 1)
	assert.Empty(t, l.Items())
}
