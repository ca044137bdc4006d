// Package config loads generator settings from defaults, an optional config
// file and SKEWGEN_ environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/skewgen"
	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/sampler"
	"github.com/spf13/viper"
)

// Config holds all configuration for a generation run.
type Config struct {
	Seed      *int64 // nil seeds from the clock
	Rows      int    // -1 runs until interrupted
	Rate      float64
	Burst     int
	Codec     string
	Log       LogConfig
	Resources ResourcesConfig
	Fields    []FieldConfig
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// ResourcesConfig selects the store that catalog resources are read from.
type ResourcesConfig struct {
	Backend   string // embedded, local, s3, minio
	LocalPath string
	// S3/MinIO configuration
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string // Custom endpoint (e.g. "localhost:9000" for MinIO)
	AccessKey string // MinIO only; S3 uses the default AWS credential chain
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// FieldConfig is one output field as written in a config file.
type FieldConfig struct {
	Name     string   `mapstructure:"name"`
	Kind     string   `mapstructure:"kind"`
	Path     string   `mapstructure:"path"`
	Resource string   `mapstructure:"resource"`
	Field    string   `mapstructure:"field"`
	Skew     *float64 `mapstructure:"skew"`
	Size     int      `mapstructure:"size"`
}

const (
	BackendEmbedded = "embedded"
	BackendLocal    = "local"
	BackendS3       = "s3"
	BackendMinIO    = "minio"
)

// Load reads configuration. An empty path looks for skewgen.{yaml,toml,json}
// in the working directory and falls back to defaults when none exists.
//
// Load does not validate; callers apply their overrides first and then call
// Validate.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SKEWGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("skewgen")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Rows:  v.GetInt("rows"),
		Rate:  v.GetFloat64("rate"),
		Burst: v.GetInt("burst"),
		Codec: v.GetString("codec"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Resources: ResourcesConfig{
			Backend:   v.GetString("resources.backend"),
			LocalPath: v.GetString("resources.local_path"),
			Bucket:    v.GetString("resources.bucket"),
			Prefix:    v.GetString("resources.prefix"),
			Region:    v.GetString("resources.region"),
			Endpoint:  v.GetString("resources.endpoint"),
			AccessKey: v.GetString("resources.access_key"),
			SecretKey: v.GetString("resources.secret_key"),
			UseSSL:    v.GetBool("resources.use_ssl"),
			PathStyle: v.GetBool("resources.path_style"),
		},
	}

	if v.IsSet("seed") {
		seed := v.GetInt64("seed")
		cfg.Seed = &seed
	}

	if err := v.UnmarshalKey("fields", &cfg.Fields); err != nil {
		return nil, invalidf("invalid fields: %v", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rows", 10)
	v.SetDefault("rate", 0) // unlimited
	v.SetDefault("burst", 1)
	v.SetDefault("codec", "go-json")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("resources.backend", BackendEmbedded)
	v.SetDefault("resources.local_path", ".")
	v.SetDefault("resources.region", "us-east-1")
	v.SetDefault("resources.use_ssl", true)
	v.SetDefault("resources.path_style", false)
}

// Validate checks settings that do not need any resource to be opened.
func (c *Config) Validate() error {
	if c.Rows < -1 {
		return invalidf("rows must be >= -1, got %d", c.Rows)
	}
	if c.Rate < 0 {
		return invalidf("rate must be >= 0, got %v", c.Rate)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return invalidf("unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalidf("unknown log format %q", c.Log.Format)
	}
	switch c.Resources.Backend {
	case BackendEmbedded, BackendLocal:
	case BackendS3, BackendMinIO:
		if c.Resources.Bucket == "" {
			return invalidf("resources.bucket is required for backend %q", c.Resources.Backend)
		}
		if c.Resources.Backend == BackendMinIO && c.Resources.Endpoint == "" {
			return invalidf("resources.endpoint is required for backend %q", BackendMinIO)
		}
	default:
		return invalidf("unknown resources backend %q", c.Resources.Backend)
	}
	return nil
}

// SlogLevel parses the configured level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, invalidf("invalid log level %q: %v", c.Level, err)
	}
	return level, nil
}

// invalidf reports a configuration error that wraps sampler.ErrConfiguration.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", sampler.ErrConfiguration, fmt.Sprintf(format, args...))
}

// Logger builds the configured logger.
func (c LogConfig) Logger() *skewgen.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	if c.Format == "json" {
		return skewgen.NewJSONLogger(level)
	}
	return skewgen.NewTextLogger(level)
}

// GeneratorFields converts the field list into generator fields.
func (c *Config) GeneratorFields() []skewgen.Field {
	fields := make([]skewgen.Field, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = skewgen.Field{
			Name: f.Name,
			Spec: sampler.Spec{
				Kind:     sampler.Kind(f.Kind),
				Path:     f.Path,
				Resource: f.Resource,
				Field:    f.Field,
				Skew:     f.Skew,
				Size:     f.Size,
			},
		}
	}
	return fields
}
