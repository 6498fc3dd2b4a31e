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

package mqx

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type visitEvent struct {
	Uid          int64 `json:"uid"`
	RestaurantID int64 `json:"restaurantId"`
}

func TestTraceMq(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx := context.Background()
	const topic = "visit_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	tq := NewTraceMqWithProvider(q, tp)

	consumer, err := tq.Consumer(topic, "test")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[visitEvent](tq, topic)
	require.NoError(t, err)
	require.NoError(t, producer.Produce(ctx, visitEvent{Uid: 1, RestaurantID: 2}))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uid":1,"restaurantId":2}`, string(msg.Value))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, topic+" publish", spans[0].Name())
	assert.Equal(t, trace.SpanKindProducer, spans[0].SpanKind())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("messaging.destination.name", topic))
	assert.Equal(t, topic+" receive", spans[1].Name())
	assert.Equal(t, trace.SpanKindConsumer, spans[1].SpanKind())
	assert.Contains(t, spans[1].Attributes(), attribute.String("messaging.consumer.group.name", "test"))
}
