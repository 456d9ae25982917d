// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Queue backends.
const (
	QueueBackendPostgres = "postgres"
	QueueBackendRedis    = "redis"
)

// Resolver kinds.
const (
	ResolverKindLLM       = "llm"
	ResolverKindHTTP      = "http"
	ResolverKindSimulated = "simulated"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Queue         QueueConfig         `yaml:"queue"`
	Scanner       ScannerConfig       `yaml:"scanner"`
	Worker        WorkerConfig        `yaml:"worker"`
	Resolver      ResolverConfig      `yaml:"resolver"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sentry        SentryConfig        `yaml:"sentry"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// RedisConfig defines the Redis connection used by the redis queue backend.
type RedisConfig struct {
	URL       string `yaml:"url"`
	KeyPrefix string `yaml:"key_prefix"`
}

// QueueConfig defines the job queue.
type QueueConfig struct {
	Backend      string        `yaml:"backend"` // postgres, redis
	LeaseTTL     time.Duration `yaml:"lease_ttl"`
	MaxAttempts  int           `yaml:"max_attempts"`
	PollInterval time.Duration `yaml:"poll_interval"`
	ReapInterval time.Duration `yaml:"reap_interval"`
	Retention    time.Duration `yaml:"retention"` // done jobs older than this are purged
}

// ScannerConfig defines the due-trigger scan.
type ScannerConfig struct {
	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`
	// ClaimLease is how far a claimed trigger's next_check is pushed while
	// its job is in flight. Defaults to worker.reschedule_interval.
	ClaimLease time.Duration `yaml:"claim_lease"`
}

// WorkerConfig defines job processing.
type WorkerConfig struct {
	RescheduleInterval time.Duration `yaml:"reschedule_interval"`
	ResolveTimeout     time.Duration `yaml:"resolve_timeout"`
	Threshold          float64       `yaml:"threshold"`
	LockTTL            time.Duration `yaml:"lock_ttl"`
}

// ResolverConfig defines how vendor prices are looked up.
type ResolverConfig struct {
	Kind         string             `yaml:"kind"`    // llm, http, simulated
	Backend      string             `yaml:"backend"` // ollama, anthropic, openai_compat
	Ollama       OllamaConfig       `yaml:"ollama"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	HTTP         HTTPResolverConfig `yaml:"http"`
	Timeout      time.Duration      `yaml:"timeout"`
	Temperature  float64            `yaml:"temperature"`
	MaxTokens    int                `yaml:"max_tokens"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings. An empty API key falls
// back to ANTHROPIC_API_KEY.
type AnthropicConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// HTTPResolverConfig defines the JSON price API.
type HTTPResolverConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// RateLimitConfig defines resolver rate limiting settings. A zero daily
// limit disables the quota.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// NotificationsConfig defines chat notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
	Slack   SlackConfig   `yaml:"slack"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// SlackConfig defines Slack incoming webhook settings.
type SlackConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// SentryConfig defines error reporting. Empty DSN disables it.
type SentryConfig struct {
	DSN         string  `yaml:"dsn"`
	Environment string  `yaml:"environment"`
	SampleRate  float64 `yaml:"sample_rate"`
}

// TelemetryConfig defines OTLP export. Empty endpoint disables it.
type TelemetryConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	applyQueueDefaults(&cfg.Queue)
	applyWorkerDefaults(&cfg.Worker)
	applyScannerDefaults(&cfg.Scanner, &cfg.Worker)
	applyResolverDefaults(&cfg.Resolver)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.KeyPrefix == "" {
		r.KeyPrefix = "ptm:jobs"
	}
}

func applyQueueDefaults(q *QueueConfig) {
	if q.Backend == "" {
		q.Backend = QueueBackendPostgres
	}
	if q.LeaseTTL == 0 {
		q.LeaseTTL = 5 * time.Minute
	}
	if q.MaxAttempts == 0 {
		q.MaxAttempts = 3
	}
	if q.PollInterval == 0 {
		q.PollInterval = 5 * time.Second
	}
	if q.ReapInterval == 0 {
		q.ReapInterval = time.Minute
	}
	if q.Retention == 0 {
		q.Retention = 7 * 24 * time.Hour
	}
}

func applyWorkerDefaults(w *WorkerConfig) {
	if w.RescheduleInterval == 0 {
		w.RescheduleInterval = 10 * time.Minute
	}
	if w.ResolveTimeout == 0 {
		w.ResolveTimeout = 60 * time.Second
	}
	if w.Threshold == 0 {
		w.Threshold = 2000
	}
	if w.LockTTL == 0 {
		w.LockTTL = 2 * time.Minute
	}
}

func applyScannerDefaults(s *ScannerConfig, w *WorkerConfig) {
	if s.Interval == 0 {
		s.Interval = 10 * time.Minute
	}
	if s.BatchSize == 0 {
		s.BatchSize = 500
	}
	if s.ClaimLease == 0 {
		s.ClaimLease = w.RescheduleInterval
	}
}

func applyResolverDefaults(r *ResolverConfig) {
	if r.Kind == "" {
		r.Kind = ResolverKindLLM
	}
	if r.Backend == "" {
		r.Backend = "ollama"
	}
	if r.Timeout == 0 {
		r.Timeout = 60 * time.Second
	}
	if r.RateLimit.PerSecond == 0 {
		r.RateLimit.PerSecond = 1.0
	}
	if r.RateLimit.Burst == 0 {
		r.RateLimit.Burst = 2
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.Queue.Backend {
	case QueueBackendPostgres:
	case QueueBackendRedis:
		if cfg.Redis.URL == "" {
			errs = append(errs, fmt.Errorf("redis.url is required when queue.backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"queue.backend must be one of: postgres, redis (got %q)", cfg.Queue.Backend))
	}
	if cfg.Queue.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("queue.max_attempts must be at least 1"))
	}
	if cfg.Queue.LeaseTTL < 0 || cfg.Scanner.Interval < 0 || cfg.Worker.RescheduleInterval < 0 {
		errs = append(errs, fmt.Errorf("intervals must not be negative"))
	}
	if cfg.Worker.Threshold < 0 {
		errs = append(errs, fmt.Errorf("worker.threshold must not be negative"))
	}
	if cfg.Worker.ResolveTimeout >= cfg.Queue.LeaseTTL {
		errs = append(errs, fmt.Errorf(
			"worker.resolve_timeout (%s) must be shorter than queue.lease_ttl (%s)",
			cfg.Worker.ResolveTimeout, cfg.Queue.LeaseTTL))
	}

	errs = append(errs, validateResolver(&cfg.Resolver)...)

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}
	if cfg.Notifications.Slack.Enabled && cfg.Notifications.Slack.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.slack.webhook_url is required when slack is enabled"))
	}

	return errors.Join(errs...)
}

func validateResolver(r *ResolverConfig) []error {
	var errs []error

	switch r.Kind {
	case ResolverKindSimulated:
		return nil
	case ResolverKindHTTP:
		if r.HTTP.BaseURL == "" {
			errs = append(errs, fmt.Errorf("resolver.http.base_url is required when kind is http"))
		}
		return errs
	case ResolverKindLLM:
	default:
		return append(errs, fmt.Errorf(
			"resolver.kind must be one of: llm, http, simulated (got %q)", r.Kind))
	}

	if r.Temperature < 0 || r.Temperature > 2 {
		errs = append(errs, fmt.Errorf("resolver.temperature must be between 0 and 2 (got %g)", r.Temperature))
	}
	if r.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("resolver.max_tokens must not be negative (got %d)", r.MaxTokens))
	}

	switch r.Backend {
	case "ollama":
		if r.Ollama.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("resolver.ollama.endpoint is required when backend is ollama"),
			)
		}
	case "anthropic":
		// The API key may come from ANTHROPIC_API_KEY instead.
		if r.Anthropic.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("resolver.anthropic.model is required when backend is anthropic"),
			)
		}
	case "openai_compat":
		if r.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("resolver.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"resolver.backend must be one of: ollama, anthropic, openai_compat (got %q)",
				r.Backend,
			),
		)
	}
	return errs
}
