package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/config"
	"github.com/FarmX-org/FarmX-mobile/internal/fakeapi"
	"github.com/FarmX-org/FarmX-mobile/internal/kafka"
	"github.com/FarmX-org/FarmX-mobile/internal/logger"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.FakeAPIAddr, "listen address")
	secret := flag.String("secret", cfg.FakeAPISecret, "token signing secret")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed development tokens")
	flag.Parse()

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	producer := kafka.New(cfg.KafkaBrokers)
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("Error closing producer", zap.Error(err))
		}
	}()

	auditManager := audit.NewManager(
		audit.MultiSink{audit.NewLogSink(log), audit.NewProducerSink(producer, cfg.AuditTopic)},
		log, 2, 5, 500*time.Millisecond,
	)
	auditManager.Start(ctx)

	srv := fakeapi.New(fakeapi.NewStore(), *secret, fakeapi.WithLogger(log), fakeapi.WithAuditor(auditManager))

	for _, user := range []string{"consumer", "farmer", "handler"} {
		tok, err := srv.IssueToken(user, *tokenTTL)
		if err != nil {
			log.Fatal("Failed to issue token", zap.String("user", user), zap.Error(err))
		}
		log.Info("Development token", zap.String("user", user), zap.String("token", tok))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(*addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		err := srv.Shutdown(shutdownCtx)
		auditManager.Shutdown(shutdownCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		return
	}
	log.Info("Server gracefully stopped")
}
