package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/kafka"
)

// LogSink writes entries to the structured log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("audit")}
}

func (s *LogSink) Write(_ context.Context, batch []Entry) error {
	for _, e := range batch {
		s.logger.Info("api call",
			zap.Stringer("id", e.ID),
			zap.String("request_id", e.RequestID),
			zap.String("method", e.Method),
			zap.String("path", e.Path),
			zap.Int("status", e.StatusCode),
			zap.String("outcome", e.Outcome),
			zap.Int64("order_id", e.OrderID),
			zap.String("new_status", e.NewStatus),
			zap.String("error", e.Error),
		)
	}
	return nil
}

// ProducerSink publishes every entry as a JSON message keyed by its ID.
type ProducerSink struct {
	producer kafka.Producer
	topic    string
}

func NewProducerSink(producer kafka.Producer, topic string) *ProducerSink {
	return &ProducerSink{producer: producer, topic: topic}
}

func (s *ProducerSink) Write(ctx context.Context, batch []Entry) error {
	var errs []error
	for _, e := range batch {
		value, err := json.Marshal(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("marshal entry %s: %w", e.ID, err))
			continue
		}
		if err := s.producer.SendMessage(ctx, s.topic, []byte(e.ID.String()), value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MultiSink fans a batch out to several sinks.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, batch []Entry) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, batch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
