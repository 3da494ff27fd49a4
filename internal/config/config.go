// Package config provides CLI configuration loaded from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const logPrefix = "config:LoadConfig"

var validate = validator.New()

// Config holds the wulai CLI configuration.
type Config struct {
	// Credentials
	Pubkey string `envconfig:"PUBKEY" validate:"required"`
	Secret string `envconfig:"SECRET" validate:"required"`

	// Platform
	Endpoint   string `envconfig:"ENDPOINT" default:"https://openapi.wul.ai" validate:"required,url"`
	APIVersion string `envconfig:"API_VERSION" default:"v2" validate:"oneof=v1 v2"`

	// Requests
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"3s" validate:"gt=0"`
	RetryCount int           `envconfig:"RETRY_COUNT" default:"0" validate:"gte=0,lte=100"`
	PoolSize   int           `envconfig:"POOL_SIZE" default:"10" validate:"gt=0"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=panic fatal error warn warning info debug trace"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// LoadConfig loads configuration from WULAI_ prefixed environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("wulai", &c); err != nil {
		return nil, fmt.Errorf("%s - %w", logPrefix, err)
	}
	return &c, nil
}

// Validate checks the loaded values. The first failing field is reported by
// its environment variable name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s - %w", logPrefix, err)
	}

	fe := verrs[0]
	return fmt.Errorf("%s - WULAI_%s failed %q validation", logPrefix, envNames[fe.StructField()], fe.Tag())
}

var envNames = map[string]string{
	"Pubkey":     "PUBKEY",
	"Secret":     "SECRET",
	"Endpoint":   "ENDPOINT",
	"APIVersion": "API_VERSION",
	"Timeout":    "TIMEOUT",
	"RetryCount": "RETRY_COUNT",
	"PoolSize":   "POOL_SIZE",
	"LogLevel":   "LOG_LEVEL",
}
