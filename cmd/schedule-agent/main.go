package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/captain/internal/adapters/eventstore"
	"github.com/okian/captain/internal/adapters/http/toolapi"
	"github.com/okian/captain/internal/agent/schedule"
	"github.com/okian/captain/internal/config"
	"github.com/okian/captain/internal/toolkit"
	"github.com/okian/captain/pkg/logger"
	"github.com/okian/captain/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics.
	// The system metrics updater publishes its own gauges instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Created events land in the external event-store API.
	callTimeout := time.Duration(cfg.CallTimeoutMS) * time.Millisecond
	store := eventstore.NewClient(cfg.EventStoreURL,
		eventstore.WithTimeout(callTimeout),
	)

	svc := schedule.New(
		schedule.WithEventCreator(store),
		schedule.WithMaxUploadBytes(cfg.MaxUploadBytes),
		schedule.WithVisionLatencyRange(
			time.Duration(cfg.VisionLatencyMinMS)*time.Millisecond,
			time.Duration(cfg.VisionLatencyMaxMS)*time.Millisecond,
		),
		schedule.WithLogger(log),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Start system metrics updater
	go metrics.StartSystemMetricsUpdater(ctx)

	reg := toolkit.NewRegistry()
	if err := reg.Add(svc.Tools()...); err != nil {
		os.Stderr.WriteString("failed to register tools: " + err.Error() + "\n")
		return
	}

	server := toolapi.NewServer(schedule.Name, reg)

	if err := toolapi.ListenAndServe(ctx, cfg.Addr, server.Handler()); err != nil {
		os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
	}
}
