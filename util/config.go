package util

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	PreviewCacheTTL   time.Duration `mapstructure:"PREVIEW_CACHE_TTL"`
	MaxNoteBytes      int           `mapstructure:"MAX_NOTE_BYTES"`
	DeniedURLSchemes  []string      `mapstructure:"DENIED_URL_SCHEMES"`
}

var (
	ErrMissingDBSource      = errors.New("DB_SOURCE must be set")
	ErrInvalidMaxNoteBytes  = errors.New("MAX_NOTE_BYTES must not be negative")
	ErrInvalidPreviewTTL    = errors.New("PREVIEW_CACHE_TTL must not be negative")
	ErrMissingServerAddress = errors.New("HTTP_SERVER_ADDRESS must be set")
)

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PREVIEW_CACHE_TTL", 10*time.Minute)
	viper.SetDefault("MAX_NOTE_BYTES", 64*1024)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// Validate reports the first setting that would prevent the service from starting.
func (config *Config) Validate() error {
	if config.DBSource == "" {
		return ErrMissingDBSource
	}

	if config.HTTPServerAddress == "" {
		return ErrMissingServerAddress
	}

	if config.MaxNoteBytes < 0 {
		return ErrInvalidMaxNoteBytes
	}

	if config.PreviewCacheTTL < 0 {
		return ErrInvalidPreviewTTL
	}

	return nil
}

// IsDevelopment reports whether the service runs with developer-friendly output.
func (config *Config) IsDevelopment() bool {
	return config.Environment == "development"
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	urlStr, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = urlStr.Hostname()
	if host == "" {
		err = fmt.Errorf("http server address %q has no host", config.HTTPServerAddress)
		return
	}

	port = urlStr.Port()
	return
}
