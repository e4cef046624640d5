package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SERVER_ADDR is the base URL of a running server, e.g. http://localhost:8080.
	// Scenarios are skipped when it is empty.
	ServerAddr string `envconfig:"SERVER_ADDR"`
	// GRPC_ADDR points at the gRPC health endpoint, the health scenario is skipped when empty
	GRPCAddr string `envconfig:"GRPC_ADDR"`
	// E2E_DEBUG_JSON dumps every request and response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours      bool          `envconfig:"E2E_COLOURS" default:"true"`
	ReplyTimeout time.Duration `envconfig:"E2E_REPLY_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
