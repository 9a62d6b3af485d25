package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/2beens/modernblog/internal/mockdata"
)

var ErrNoConfigForEnv = errors.New("no config for env")

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsHost string `toml:"metrics_host"`
	MetricsPort int    `toml:"metrics_port"`

	// browser origins allowed to read the feed API, "*" for all
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// redis, used for rate limiting; empty host disables it
	RedisHost              string `toml:"redis_host"`
	RedisPort              int    `toml:"redis_port"`
	RateLimitAllowedPerMin int    `toml:"rate_limit_allowed_per_min"`

	// content generation, nil probabilities fall back to the generator defaults
	Seed                int64    `toml:"seed"`
	FeaturedProbability *float64 `toml:"featured_probability"`
	TrendingProbability *float64 `toml:"trending_probability"`
	RecentWindowDays    int      `toml:"recent_window_days"`
	FeedCorpusSize      int      `toml:"feed_corpus_size"`
	ProfileCorpusSize   int      `toml:"profile_corpus_size"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the validated config of the given env.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&tomlConfig, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, content string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.Decode(content, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&tomlConfig, env)
}

func fromToml(tomlConfig *Toml, env string) (*Config, error) {
	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoConfigForEnv, env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

// Validate reports all the problems of the config at once.
func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("port out of range: %d", c.Port))
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		err = multierr.Append(err, fmt.Errorf("metrics port out of range: %d", c.MetricsPort))
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.Port {
		err = multierr.Append(err, fmt.Errorf("metrics port same as main port: %d", c.Port))
	}
	if p := c.Featured(); p < 0 || p > 1 {
		err = multierr.Append(err, fmt.Errorf("featured probability not in [0, 1]: %v", p))
	}
	if p := c.Trending(); p < 0 || p > 1 {
		err = multierr.Append(err, fmt.Errorf("trending probability not in [0, 1]: %v", p))
	}
	if c.RecentWindowDays < 0 {
		err = multierr.Append(err, fmt.Errorf("negative recent window: %d", c.RecentWindowDays))
	}
	if c.FeedCorpusSize < 0 {
		err = multierr.Append(err, fmt.Errorf("negative feed corpus size: %d", c.FeedCorpusSize))
	}
	if c.ProfileCorpusSize < 0 {
		err = multierr.Append(err, fmt.Errorf("negative profile corpus size: %d", c.ProfileCorpusSize))
	}
	if c.RedisHost != "" && c.RateLimitAllowedPerMin <= 0 {
		err = multierr.Append(err, errors.New("rate limit must be positive when redis is set"))
	}
	return err
}

// RecentWindow is the publish date window of generated posts, 0 for the default one.
func (c *Config) RecentWindow() time.Duration {
	return time.Duration(c.RecentWindowDays) * 24 * time.Hour
}

// Featured is the probability of a generated post being featured.
func (c *Config) Featured() float64 {
	if c.FeaturedProbability == nil {
		return mockdata.DefaultFeaturedProbability
	}
	return *c.FeaturedProbability
}

// Trending is the probability of a generated post being trending.
func (c *Config) Trending() float64 {
	if c.TrendingProbability == nil {
		return mockdata.DefaultTrendingProbability
	}
	return *c.TrendingProbability
}

// Probability is a helper for setting the optional probabilities in code.
func Probability(p float64) *float64 {
	return &p
}
