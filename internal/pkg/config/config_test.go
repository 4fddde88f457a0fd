//go:build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "parking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "parking")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Simulator.Interval)
		assert.Equal(t, 5*time.Second, cfg.Live.PushInterval)
		assert.Equal(t, "3000", cfg.Server.StatusPort)
		assert.Equal(t, "3001", cfg.Server.PaymentPort)
	})

	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "zero simulator interval", env: "SIMULATOR_INTERVAL", val: "0s"},
		{name: "negative simulator interval", env: "SIMULATOR_INTERVAL", val: "-1s"},
		{name: "zero push interval", env: "STATUS_PUSH_INTERVAL", val: "0s"},
	}
	for _, tt := range tests {
		t.Run("error: "+tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.env, tt.val)

			_, err := LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestNewTestConfig_IsValid(t *testing.T) {
	cfg := NewTestConfig()

	assert.NoError(t, cfg.Simulator.Validate())
	assert.NoError(t, cfg.Live.Validate())
	assert.NoError(t, cfg.Gateway.Validate())
}
