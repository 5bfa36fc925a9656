package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/config"
	"github.com/FarmX-org/FarmX-mobile/internal/kafka"
	"github.com/FarmX-org/FarmX-mobile/internal/logger"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := config.Load()

	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "backend base URL")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "session bearer token")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	flag.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP request timeout")
	roles := flag.String("roles", strings.Join(cfg.Roles, ","), "comma separated session roles")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: farmx [flags] <command> [args]\n\n%s\nFlags:\n", usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sess := session.New(session.Static{Token: cfg.Token, Roles: splitRoles(*roles)})
	if err := sess.Load(); err != nil {
		log.Warn("No usable session", zap.Error(err))
	}

	sinks := audit.MultiSink{audit.NewLogSink(log)}
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.New(cfg.KafkaBrokers)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("Error closing producer", zap.Error(err))
			}
		}()
		sinks = append(sinks, audit.NewProducerSink(producer, cfg.AuditTopic))
	}
	auditManager := audit.NewManager(sinks, log, 1, 10, time.Second)
	auditManager.Start(ctx)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		auditManager.Shutdown(shutdownCtx)
	}()

	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, log)
		defer stop()
	}

	client := api.NewClient(cfg.APIBaseURL, sess, cfg.HTTPTimeout,
		api.WithAuditor(auditManager),
		api.WithLogger(log),
	)

	a := newApp(client, sess, os.Stdout, os.Stderr, log)
	err := a.run(ctx, flag.Args())
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		return 2
	default:
		log.Debug("Command failed", zap.Error(err))
		return 1
	}
}

func splitRoles(raw string) []string {
	var out []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func serveMetrics(addr string, log *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", zap.Error(err))
		}
	}()
	log.Info("Serving metrics", zap.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
