package main

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	cfg := &config.Config{
		Primary: config.Primary{Env: "production"},
		Database: config.DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     1,
			User:     "lightbnb",
			Password: "lightbnb",
			Name:     "lightbnb",
			SSLMode:  "disable",
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	log := zerolog.Nop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := run(ctx, cfg, &log, logger.NewLoggerService(cfg.Observability))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate database")
}
