package config_test

import (
	"os"
	"testing"
	"time"

	"go-hrm/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test, restoring
// it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.Equal(t, 1.0, cfg.Server.LoginRateLimitRPS)
	assert.Equal(t, 20, cfg.Server.LoginRateLimitBurst)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Broker)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_LOGIN_RATE_LIMIT_RPS", "0")
	t.Setenv("SERVER_LOGIN_RATE_LIMIT_BURST", "100")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 0.0, cfg.Server.LoginRateLimitRPS)
	assert.Equal(t, 100, cfg.Server.LoginRateLimitBurst)
}
