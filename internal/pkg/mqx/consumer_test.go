package mqx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONConsumer_Consume(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	const topic = "like_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))

	var got []visitEvent
	handleErr := errors.New("mock handle error")
	c, err := NewJSONConsumer[visitEvent](q, topic, "test", func(ctx context.Context, evt visitEvent) error {
		got = append(got, evt)
		if evt.Uid < 0 {
			return handleErr
		}
		return nil
	})
	require.NoError(t, err)

	producer, err := NewGeneralProducer[visitEvent](q, topic)
	require.NoError(t, err)
	raw, err := q.Producer(topic)
	require.NoError(t, err)

	require.NoError(t, producer.Produce(ctx, visitEvent{Uid: 1, RestaurantID: 3}))
	require.NoError(t, c.Consume(ctx))
	assert.Equal(t, []visitEvent{{Uid: 1, RestaurantID: 3}}, got)

	// 处理失败
	require.NoError(t, producer.Produce(ctx, visitEvent{Uid: -1}))
	assert.ErrorIs(t, c.Consume(ctx), handleErr)

	// 不是 JSON
	_, err = raw.Produce(ctx, &mq.Message{Value: []byte("not json")})
	require.NoError(t, err)
	assert.Error(t, c.Consume(ctx))
	assert.Len(t, got, 2)
}
