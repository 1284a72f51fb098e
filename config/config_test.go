package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("STORAGE_PROVIDER", "S3")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("MAX_RESUME_BYTES", "not-a-number")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "s3", cfg.StorageProvider)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(5<<20), cfg.MaxResumeBytes)
}

func TestLoadConfigRejectsNonPositiveResumeLimit(t *testing.T) {
	for _, v := range []string{"0", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("MAX_RESUME_BYTES", v)

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "-5m")

	assert.True(t, getEnvBool("X_BOOL", false))
	assert.Equal(t, time.Minute, getEnvDuration("X_DUR", time.Minute))
	assert.Equal(t, "fb", getEnv("X_MISSING", "fb"))
}
