// Package client implements an IPP client built on top of the goipp
// wire codec: operation builders, an HTTP transport, and a request/
// response façade.
package client

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the client's static configuration: the printer to talk
// to, the identity it presents in requests, and the transport's
// timeout/TLS/retry behavior.
//
// Load populates a Config from a YAML file via viper, the way
// internal/config.Load builds GlobalConfig in the agent this package
// is modeled on; Config itself has no "root key" wrapper since the
// client ships as a library, not a standalone daemon.
type Config struct {
	PrinterURI    string        `mapstructure:"printer_uri"`
	Charset       string        `mapstructure:"charset"`
	NaturalLang   string        `mapstructure:"natural_language"`
	RequestingUser string       `mapstructure:"requesting_user"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	TLS           TLSConfig     `mapstructure:"tls"`
	Retry         RetryConfig   `mapstructure:"retry"`
	LogLevel      string        `mapstructure:"log_level"`
}

// TLSConfig controls the default HTTPTransport's TLS behavior.
type TLSConfig struct {
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"`
	ClientCert         string `mapstructure:"client_cert"`
	ClientKey          string `mapstructure:"client_key"`
	CACert             string `mapstructure:"ca_cert"`
}

// RetryConfig holds a retry count and backoff loaded from the config
// file. Client.Do does not read it: each request is sent with a single
// Transport.Exchange call, and a failure is returned without retrying.
type RetryConfig struct {
	Attempts int           `mapstructure:"attempts"`
	Backoff  time.Duration `mapstructure:"backoff"`
}

// DefaultConfig returns a Config with the same baseline values
// setDefaults installs in Load, usable without reading any file.
func DefaultConfig() *Config {
	return &Config{
		Charset:        "utf-8",
		NaturalLang:    "en",
		RequestingUser: "anonymous",
		RequestTimeout: 30 * time.Second,
		Retry:          RetryConfig{Attempts: 1, Backoff: time.Second},
		LogLevel:       "info",
	}
}

// Load reads a Config from a YAML (or TOML/JSON, per viper's own
// format sniffing) file at path, applying defaults for anything the
// file and environment leave unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("client: reading config: %w", err)
	}

	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("client: unmarshaling config: %w", err)
	}

	if cfg.PrinterURI == "" {
		return nil, fmt.Errorf("client: printer_uri is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("charset", "utf-8")
	v.SetDefault("natural_language", "en")
	v.SetDefault("requesting_user", "anonymous")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("retry.attempts", 1)
	v.SetDefault("retry.backoff", time.Second)
	v.SetDefault("log_level", "info")
}
