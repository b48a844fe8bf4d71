package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// Publisher wraps a Kafka sync producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishOrderPlaced publishes an order placed event
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypeOrderPlaced
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicOrders, event.EventType, event.EventID,
		fmt.Sprintf("order_%d", event.OrderID), event,
		attribute.Int64("order.id", int64(event.OrderID)),
		attribute.Int("order.item_count", event.ItemCount),
		attribute.Float64("order.total", event.Total),
	)
}

// PublishOrderStatusChanged publishes an order status transition event
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypeOrderStatusChanged
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicOrders, event.EventType, event.EventID,
		fmt.Sprintf("order_%d", event.OrderID), event,
		attribute.Int64("order.id", int64(event.OrderID)),
		attribute.String("order.from_status", event.FromStatus),
		attribute.String("order.to_status", event.ToStatus),
	)
}

// PublishPaymentRecorded publishes a payment recorded event
func (p *Publisher) PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypePaymentRecorded
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicPayments, event.EventType, event.EventID,
		fmt.Sprintf("order_%d", event.OrderID), event,
		attribute.Int64("payment.id", int64(event.PaymentID)),
		attribute.String("payment.method", event.Method),
		attribute.Float64("payment.amount", event.Amount),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	spanAttrs := append([]attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.destination_kind", "topic"),
		attribute.String("event.type", eventType),
		attribute.String("event.id", eventID),
	}, attrs...)

	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(spanAttrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Logger.Info().
		Str("topic", topic).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
