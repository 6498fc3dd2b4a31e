package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/tastebook/internal/pkg/mqx"

// TraceMq 发送和消费消息的时候打点
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return NewTraceMqWithProvider(q, otel.GetTracerProvider())
}

func NewTraceMqWithProvider(q mq.MQ, tp trace.TracerProvider) *TraceMq {
	return &TraceMq{MQ: q, tracer: tp.Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMq) Consumer(topic, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &TraceConsumer{Consumer: c, topic: topic, group: groupID, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	end(span, err)
	return res, err
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	end(span, err)
	return res, err
}

func (t *TraceProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, t.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", t.topic),
	)
	if m != nil {
		span.SetAttributes(attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	return ctx, span
}

// TraceConsumer 只给 Consume 打点，ConsumeChan 保持原样
type TraceConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

func (t *TraceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	_, span := t.tracer.Start(ctx, t.topic+" receive", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "receive"),
		attribute.String("messaging.destination.name", t.topic),
		attribute.String("messaging.consumer.group.name", t.group),
	)
	if msg != nil {
		span.SetAttributes(attribute.Int("messaging.message.body.size", len(msg.Value)))
	}
	end(span, err)
	return msg, err
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
