package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "dealspot", cfg.Database.Database)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Empty(t, cfg.Admin.Password, "no password may be baked into the binary")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "dealspot_staging")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "3s")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "dealspot_staging", cfg.Database.Database)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.True(t, cfg.App.Debug)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "not-a-duration")
	t.Setenv("MONGODB_MAX_POOL_SIZE", "lots")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, uint64(20), cfg.Database.MaxPoolSize)
}
