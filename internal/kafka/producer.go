//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_kafka
package kafka

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// ConsoleProducer prints messages instead of publishing them. It is used
// when no brokers are configured.
type ConsoleProducer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleProducer(out io.Writer) *ConsoleProducer {
	if out == nil {
		out = os.Stdout
	}
	zap.L().Debug("Initialized console audit producer")
	return &ConsoleProducer{out: out}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		zap.L().Warn("Console producer cancelled", zap.String("topic", topic), zap.ByteString("key", key))
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.out, "--- %s ---\nKey: %s\nValue: %s\n", topic, key, value)
	return err
}

func (p *ConsoleProducer) Close() error {
	return nil
}

// WriterProducer publishes to a Kafka cluster. The topic travels on each
// message so one writer serves every topic.
type WriterProducer struct {
	w *kafkago.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		w: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.w.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("kafka write to %s: %w", topic, err)
	}
	return nil
}

func (p *WriterProducer) Close() error {
	return p.w.Close()
}

// New picks the writer producer when brokers are configured.
func New(brokers []string) Producer {
	if len(brokers) == 0 {
		return NewConsoleProducer(os.Stdout)
	}
	return NewWriterProducer(brokers)
}
