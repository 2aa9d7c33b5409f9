// internal/adapters/kafka/producer_test.go
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zaptest"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

func testEvent() domain.RequestEvent {
	return domain.RequestEvent{
		RequestID:  "r1",
		SellerName: "PetShop",
		UserName:   "ana",
		Status:     domain.StatusCreated,
		TotalValue: 14.99,
		EventType:  domain.EventRequestCreated,
		OccurredAt: time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got domain.RequestEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.RequestID != "r1" || got.EventType != domain.EventRequestCreated || got.TotalValue != 14.99 {
			return errors.New("unexpected event payload: " + string(val))
		}
		return nil
	})

	pub := NewPublisher(producer, "request_events", zaptest.NewLogger(t))
	if err := pub.Publish(context.Background(), testEvent()); err != nil {
		t.Errorf("Publish() unexpected error: %v", err)
	}
}

func TestPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewPublisher(producer, "request_events", zaptest.NewLogger(t))
	if err := pub.Publish(context.Background(), testEvent()); !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Errorf("Publish() error = %v, want %v", err, sarama.ErrOutOfBrokers)
	}
}

func TestSaramaHeaderCarrier_InjectsTraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	carrier := make(saramaHeaderCarrier, 0)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)

	want := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	if got := carrier.Get("traceparent"); got != want {
		t.Errorf("traceparent = %q, want %q", got, want)
	}
	if keys := carrier.Keys(); len(keys) != 1 || keys[0] != "traceparent" {
		t.Errorf("Keys() = %v, want [traceparent]", keys)
	}
}
