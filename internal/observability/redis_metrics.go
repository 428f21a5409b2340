package observability

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var redisHookOnce sync.Once

// InstrumentRedisClient attaches command and pool metrics to the client.
// Redis backs the fixed-window rate limiter here, so the interesting
// signals are command latency, error rate, and pool saturation. Safe to
// call more than once; the hook is installed once per process.
func InstrumentRedisClient(client redis.UniversalClient, logger *slog.Logger) {
	if client == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	redisHookOnce.Do(func() {
		hook, err := newRedisCommandHook(client)
		if err != nil {
			logger.Warn("redis instrumentation disabled", "error", err)
			return
		}
		client.AddHook(hook)
		logger.Info("redis instrumentation enabled")
	})
}

type redisCommandHook struct {
	commands metric.Int64Counter
	latency  metric.Float64Histogram
}

func newRedisCommandHook(client redis.UniversalClient) (*redisCommandHook, error) {
	meter := otel.Meter(meterName)

	commands, err := meter.Int64Counter(
		"redis.command.total",
		metric.WithDescription("Redis commands executed, tagged with outcome"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"redis.command.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Redis command latency in seconds"),
	)
	if err != nil {
		return nil, err
	}
	saturation, err := meter.Float64ObservableGauge(
		"redis.pool.saturation",
		metric.WithUnit("1"),
		metric.WithDescription("Connection pool saturation ratio"),
	)
	if err != nil {
		return nil, err
	}
	_, err = meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		stats := client.PoolStats()
		if stats != nil && stats.TotalConns > 0 {
			used := float64(stats.TotalConns - stats.IdleConns)
			ratio := used / float64(stats.TotalConns)
			if ratio < 0 {
				ratio = 0
			}
			if ratio > 1 {
				ratio = 1
			}
			observer.ObserveFloat64(saturation, ratio)
		}
		return nil
	}, saturation)
	if err != nil {
		return nil, err
	}

	return &redisCommandHook{commands: commands, latency: latency}, nil
}

func (h *redisCommandHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *redisCommandHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.record(ctx, cmd.Name(), err, time.Since(start))
		return err
	}
}

func (h *redisCommandHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)
		h.latency.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
			attribute.String("command", "pipeline"),
			attribute.String("outcome", commandOutcome(err)),
		))
		for _, cmd := range cmds {
			h.record(ctx, cmd.Name(), cmd.Err(), 0)
		}
		return err
	}
}

func (h *redisCommandHook) record(ctx context.Context, name string, err error, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("command", strings.ToLower(name)),
		attribute.String("outcome", commandOutcome(err)),
	)
	h.commands.Add(ctx, 1, attrs)
	if elapsed > 0 {
		h.latency.Record(ctx, elapsed.Seconds(), attrs)
	}
}

func commandOutcome(err error) string {
	switch err {
	case nil:
		return "ok"
	case redis.Nil:
		return "miss"
	default:
		return "error"
	}
}
