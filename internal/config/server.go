package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// ServerConfig is read from API_* style environment variables.
type ServerConfig struct {
	Port               string        `envconfig:"API_PORT" default:"8080"`
	Env                string        `envconfig:"API_ENV" default:"development"`
	VesselDir          string        `envconfig:"VESSEL_DIR" default:"examples/vessels"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	ResultCacheTTL     time.Duration `envconfig:"RESULT_CACHE_TTL" default:"30m"`
}

func (s ServerConfig) IsProduction() bool { return s.Env == "production" }

func LoadServer() (*ServerConfig, error) {
	var s ServerConfig
	if err := envconfig.Process("", &s); err != nil {
		return nil, errors.Wrap(err, "read server environment")
	}
	return &s, nil
}
