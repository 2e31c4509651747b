package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "minioadmin")
	t.Setenv("BROKER_URI", "redis://localhost:6379")
	t.Setenv("AUTH_JWT_SECRET", "secret")
}

func TestLoadfromFile(t *testing.T) {
	setSecrets(t)

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":8080", cfg.Default.Address)
	assert.Equal(t, int64(5<<20), cfg.Diary.MaxUploadSize)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, "minioadmin", cfg.MinIOClient.AccessKey)
	assert.Equal(t, "secret", cfg.Token.Secret)
	assert.Equal(t, "diary-service", cfg.BrokerConfig.GroupName)
	assert.Equal(t, []string{"console", "file"}, cfg.Logger.Targets)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
}

func TestLoadMissingSecret(t *testing.T) {
	setSecrets(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load("./config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./nope.yml")
	assert.Error(t, err)
}
