package notify

import (
	"context"
	"encoding/json"
	"time"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/clock"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("coffeeshop/internal/adapters/out/notify")

// MessageWriter is the part of *kafka.Writer the notifier uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.Notifier = (*KafkaNotifier)(nil)

// KafkaNotifier publishes an OrderEvent per notification, keyed by order id so
// events of one order stay in one partition.
type KafkaNotifier struct {
	writer MessageWriter
	topic  string
	clock  clock.Clock
}

// NewKafkaWriter is the writer KafkaNotifier uses in production.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           100 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
	}
}

func NewKafkaNotifier(writer MessageWriter, topic string, c clock.Clock) *KafkaNotifier {
	if c == nil {
		c = clock.NewSystem()
	}
	return &KafkaNotifier{writer: writer, topic: topic, clock: c}
}

func (n *KafkaNotifier) NotifyOrderPlaced(ctx context.Context, o *order.Order) error {
	return n.publish(ctx, ports.EventOrderPlaced, o)
}

func (n *KafkaNotifier) NotifyOrderReady(ctx context.Context, o *order.Order) error {
	return n.publish(ctx, ports.EventOrderReady, o)
}

func (n *KafkaNotifier) NotifyOrderCancelled(ctx context.Context, o *order.Order) error {
	return n.publish(ctx, ports.EventOrderCancelled, o)
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func (n *KafkaNotifier) publish(ctx context.Context, event ports.NotificationEvent, o *order.Order) error {
	key := o.ID().String()
	data, err := json.Marshal(newOrderEvent(event, o, n.clock.Now()))
	if err != nil {
		return ports.NewNotificationError(event, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	}

	ctx, span := tracer.Start(ctx, "send "+n.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(n.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, messageCarrier{msg: &msg})

	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ports.NewNotificationError(event, err)
	}
	return nil
}
