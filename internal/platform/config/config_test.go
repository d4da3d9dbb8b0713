// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-SINGH7999/the-world/internal/platform/config"
)

/*
TestLoad_Defaults verifies env defaults with the embedded driver.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "bolt")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/auth.pub")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "./data/worlddoc.db", cfg.BoltPath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_DriverRequirements checks driver-dependent validation.
*/
func TestLoad_DriverRequirements(t *testing.T) {
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/auth.pub")

	t.Run("postgres_without_url", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown_driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := config.Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("missing_public_key", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "bolt")
		t.Setenv("JWT_PUBLIC_KEY_PATH", "")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
