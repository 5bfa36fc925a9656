package main

import (
	"context"
	"encoding/json"
	"flag"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/config"
	"github.com/FarmX-org/FarmX-mobile/internal/logger"
)

const groupID = "farmx-audit-consumer-group"

func main() {
	cfg := config.Load()

	brokers := flag.String("brokers", strings.Join(cfg.KafkaBrokers, ","), "comma separated Kafka brokers")
	topic := flag.String("topic", cfg.AuditTopic, "audit topic")
	flag.Parse()

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if *brokers == "" {
		*brokers = "localhost:9092"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting Kafka Consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(*brokers, ","),
		GroupID:        groupID,
		Topic:          *topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Info("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	log.Info("Consumer connected", zap.String("topic", *topic), zap.String("brokers", *brokers))

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Shutdown signal received, stopping consumer.")
				return
			}
			log.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		var e audit.Entry
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Warn("Skipping malformed audit entry",
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
			continue
		}

		log.Info("Audit entry",
			zap.Time("time", m.Time),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.String("key", string(m.Key)),
			zap.String("method", e.Method),
			zap.String("path", e.Path),
			zap.Int("status", e.StatusCode),
			zap.String("outcome", e.Outcome),
			zap.String("user", e.User),
			zap.Int64("order_id", e.OrderID),
			zap.String("new_status", e.NewStatus),
			zap.String("error", e.Error),
		)
	}
}
