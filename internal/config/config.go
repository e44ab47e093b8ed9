package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	PORT             = "PORT"
	METRICS_PORT     = "METRICS_PORT"
	IS_DEV           = "IS_DEV"
	BASIC_AUTH_USER  = "BASIC_AUTH_USER"
	BASIC_AUTH_PASS  = "BASIC_AUTH_PASS"
	FETCH_TIMEOUT    = "FETCH_TIMEOUT"
	MAX_BODY_BYTES   = "MAX_BODY_BYTES"
	USER_AGENT       = "USER_AGENT"
	RATE_LIMIT_RPS   = "RATE_LIMIT_RPS"
	RATE_LIMIT_BURST = "RATE_LIMIT_BURST"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	MetricsPort    string        `mapstructure:"METRICS_PORT"`
	IsDev          bool          `mapstructure:"IS_DEV"`
	BasicAuthUser  string        `mapstructure:"BASIC_AUTH_USER"`
	BasicAuthPass  string        `mapstructure:"BASIC_AUTH_PASS"`
	FetchTimeout   time.Duration `mapstructure:"FETCH_TIMEOUT"`
	MaxBodyBytes   int64         `mapstructure:"MAX_BODY_BYTES"`
	UserAgent      string        `mapstructure:"USER_AGENT"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`

	// EnvFileLoaded reports whether a .env file was found and read.
	EnvFileLoaded bool `mapstructure:"-"`
}

var AppConfig *Config

// BasicAuthEnabled is true only when both credentials are configured.
func (c *Config) BasicAuthEnabled() bool {
	return c.BasicAuthUser != "" && c.BasicAuthPass != ""
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:           "8080",
		MetricsPort:    "8081",
		FetchTimeout:   30 * time.Second,
		MaxBodyBytes:   10 << 20,
		UserAgent:      "perfsmell/1.0",
		RateLimitRPS:   1,
		RateLimitBurst: 3,
	}
}

// LoadEnv reads envFile (if it exists) and the process environment into
// AppConfig. A missing env file is not an error.
func LoadEnv(envFile string) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(PORT, d.Port)
	v.SetDefault(METRICS_PORT, d.MetricsPort)
	v.SetDefault(IS_DEV, d.IsDev)
	v.SetDefault(BASIC_AUTH_USER, "")
	v.SetDefault(BASIC_AUTH_PASS, "")
	v.SetDefault(FETCH_TIMEOUT, d.FetchTimeout)
	v.SetDefault(MAX_BODY_BYTES, d.MaxBodyBytes)
	v.SetDefault(USER_AGENT, d.UserAgent)
	v.SetDefault(RATE_LIMIT_RPS, d.RateLimitRPS)
	v.SetDefault(RATE_LIMIT_BURST, d.RateLimitBurst)

	loaded := false
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
			loaded = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.EnvFileLoaded = loaded

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return AppConfig, nil
}

func (c *Config) validate() error {
	if (c.BasicAuthUser == "") != (c.BasicAuthPass == "") {
		return errors.New("BASIC_AUTH_USER and BASIC_AUTH_PASS must be set together")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", FETCH_TIMEOUT, c.FetchTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%s must be positive, got %d", MAX_BODY_BYTES, c.MaxBodyBytes)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("%s and %s must be positive", RATE_LIMIT_RPS, RATE_LIMIT_BURST)
	}
	return nil
}
