package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/price-trigger-monitor/internal/config"
	"github.com/donaldgifford/price-trigger-monitor/internal/engine"
	"github.com/donaldgifford/price-trigger-monitor/internal/errreport"
	"github.com/donaldgifford/price-trigger-monitor/internal/notify"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
	"github.com/donaldgifford/price-trigger-monitor/internal/telemetry"
	"github.com/donaldgifford/price-trigger-monitor/pkg/logger"
	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
)

const (
	connectTimeout = 30 * time.Second
	flushTimeout   = 5 * time.Second
)

// app holds the shared services every long-running command needs.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *store.PostgresStore
	queue    queue.Queue
	reporter errreport.Reporter

	shutdownTelemetry telemetry.ShutdownFunc
}

// newApp loads config and connects the store and queue.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{cfg: cfg, log: logger.New(cfg.Logging.Level, cfg.Logging.Format)}
	slog.SetDefault(a.log)

	a.shutdownTelemetry, err = telemetry.Setup(ctx, telemetry.Options{
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    "trigger-monitor",
		ServiceVersion: Version,
		SampleRatio:    cfg.Telemetry.SampleRatio,
		MetricInterval: cfg.Telemetry.MetricInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}

	a.reporter, err = errreport.New(errreport.Options{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     "trigger-monitor@" + Version,
		SampleRate:  cfg.Sentry.SampleRate,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	a.store, err = store.NewPostgresStore(connCtx, cfg.Database.DSN())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	a.queue, err = buildQueue(connCtx, cfg, a.store, a.log)
	if err != nil {
		a.close()
		return nil, err
	}

	a.log.Info("runtime ready",
		"queue", cfg.Queue.Backend,
		"resolver", cfg.Resolver.Kind,
		"telemetry", cfg.Telemetry.Endpoint != "",
		"sentry", cfg.Sentry.DSN != "",
	)
	return a, nil
}

func (a *app) close() {
	if a.queue != nil {
		if err := a.queue.Close(); err != nil {
			a.log.Warn("closing queue", "error", err)
		}
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.reporter != nil {
		a.reporter.Flush(flushTimeout)
	}
	if a.shutdownTelemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := a.shutdownTelemetry(ctx); err != nil {
			a.log.Warn("shutting down telemetry", "error", err)
		}
	}
}

// engineOptions maps the scanner and worker config onto engine options.
func (a *app) engineOptions() []engine.Option {
	return engineOptions(a.cfg, a.log, a.reporter)
}

func (a *app) newScanner() *engine.Scanner {
	return engine.NewScanner(a.store, a.queue, a.engineOptions()...)
}

func (a *app) newWorker() (*engine.Worker, error) {
	res, err := buildResolver(a.cfg.Resolver, a.log)
	if err != nil {
		return nil, err
	}
	n := buildNotifier(a.cfg.Notifications, a.log)
	return engine.NewWorker(a.store, a.queue, res, n, a.engineOptions()...), nil
}

func engineOptions(cfg *config.Config, log *slog.Logger, reporter errreport.Reporter) []engine.Option {
	return []engine.Option{
		engine.WithLogger(log),
		engine.WithReporter(reporter),
		engine.WithRescheduleInterval(cfg.Worker.RescheduleInterval),
		engine.WithClaimLease(cfg.Scanner.ClaimLease),
		engine.WithThreshold(cfg.Worker.Threshold),
		engine.WithResolveTimeout(cfg.Worker.ResolveTimeout),
		engine.WithBatchSize(cfg.Scanner.BatchSize),
		engine.WithLockTTL(cfg.Worker.LockTTL),
	}
}

// buildQueue opens the configured queue backend. The postgres backend shares
// the store's pool.
func buildQueue(
	ctx context.Context,
	cfg *config.Config,
	s *store.PostgresStore,
	log *slog.Logger,
) (queue.Queue, error) {
	opts := []queue.Option{
		queue.WithLeaseTTL(cfg.Queue.LeaseTTL),
		queue.WithMaxAttempts(cfg.Queue.MaxAttempts),
		queue.WithPollInterval(cfg.Queue.PollInterval),
		queue.WithLogger(log),
	}

	switch cfg.Queue.Backend {
	case config.QueueBackendRedis:
		rdb, err := queue.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return queue.NewRedisQueue(rdb, cfg.Redis.KeyPrefix, opts...), nil
	case config.QueueBackendPostgres:
		return queue.NewPostgresQueue(s.Pool(), opts...), nil
	default:
		return nil, fmt.Errorf("unknown queue backend %q", cfg.Queue.Backend)
	}
}

// tracedClient returns an HTTP client whose requests carry the caller's
// trace context and appear as client spans.
func tracedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// buildResolver constructs the configured price resolver wrapped in the
// rate limiter.
func buildResolver(cfg config.ResolverConfig, log *slog.Logger) (resolver.Resolver, error) {
	client := tracedClient(cfg.Timeout)

	var res resolver.Resolver
	switch cfg.Kind {
	case config.ResolverKindLLM:
		backend, err := buildLLMBackend(cfg, client)
		if err != nil {
			return nil, err
		}
		var llmOpts []resolver.LLMResolverOption
		if cfg.Temperature > 0 {
			llmOpts = append(llmOpts, resolver.WithTemperature(cfg.Temperature))
		}
		if cfg.MaxTokens > 0 {
			llmOpts = append(llmOpts, resolver.WithMaxTokens(cfg.MaxTokens))
		}
		res = resolver.NewLLMResolver(backend, llmOpts...)
	case config.ResolverKindHTTP:
		res = resolver.NewHTTPResolver(cfg.HTTP.BaseURL,
			resolver.WithHTTPResolverClient(client),
			resolver.WithHTTPResolverAPIKey(cfg.HTTP.APIKey),
		)
	case config.ResolverKindSimulated:
		log.Warn("using simulated resolver; quotes are synthetic")
		res = resolver.NewSimulatedResolver()
	default:
		return nil, fmt.Errorf("unknown resolver kind %q", cfg.Kind)
	}

	limiter := resolver.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)
	return resolver.NewRateLimited(res, limiter), nil
}

func buildLLMBackend(cfg config.ResolverConfig, client *http.Client) (resolver.LLMBackend, error) {
	switch cfg.Backend {
	case "ollama":
		return resolver.NewOllamaBackend(cfg.Ollama.Endpoint, cfg.Ollama.Model,
			resolver.WithBackendHTTPClient(client),
		), nil
	case "anthropic":
		return resolver.NewAnthropicBackend(
			resolver.WithBackendHTTPClient(client),
			resolver.WithEndpoint(cfg.Anthropic.Endpoint),
			resolver.WithModel(cfg.Anthropic.Model),
			resolver.WithAPIKey(cfg.Anthropic.APIKey),
		), nil
	case "openai_compat":
		return resolver.NewOpenAICompatBackend(cfg.OpenAICompat.Endpoint, cfg.OpenAICompat.Model,
			resolver.WithBackendHTTPClient(client),
			resolver.WithAPIKey(cfg.OpenAICompat.APIKey),
		), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// buildNotifier fans out to every enabled chat webhook, or logs alerts when
// none is configured.
func buildNotifier(cfg config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	client := tracedClient(10 * time.Second)

	var targets []notify.Notifier
	if cfg.Discord.Enabled && cfg.Discord.WebhookURL != "" {
		targets = append(targets, notify.NewDiscordNotifier(cfg.Discord.WebhookURL, notify.WithHTTPClient(client)))
	}
	if cfg.Slack.Enabled && cfg.Slack.WebhookURL != "" {
		targets = append(targets, notify.NewSlackNotifier(cfg.Slack.WebhookURL, notify.WithSlackHTTPClient(client)))
	}

	switch len(targets) {
	case 0:
		return notify.NewNoOpNotifier(log)
	case 1:
		return targets[0]
	default:
		return notify.NewMultiNotifier(targets...)
	}
}
