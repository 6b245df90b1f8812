package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SFTP_HOST", "SFTP_PORT", "SFTP_USERNAME", "SFTP_PASSWORD",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PREFIX",
}

// clearConfigEnv unsets every config variable for the duration of the test
func clearConfigEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")
	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default_value"))
	assert.Equal(t, "default_value", getEnv("NON_EXISTENT_VAR", "default_value"))

	t.Setenv("EMPTY_VAR", "")
	assert.Equal(t, "default_value", getEnv("EMPTY_VAR", "default_value"))
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SFTP_HOST", "transfer.example.com")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_USERNAME", "sftp-user")
	t.Setenv("SFTP_PASSWORD", "secret")
	t.Setenv("S3_BUCKET", "backups")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Item{Host: "transfer.example.com", Port: 2222, Username: "sftp-user", Password: "secret"}, cfg.Profile)
	assert.Equal(t, "backups", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestLoadConfigFromProfileFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SFTP_USERNAME", "from-env")

	profile := filepath.Join(t.TempDir(), "mbs.env")
	require.NoError(t, os.WriteFile(profile, []byte("SFTP_HOST=profile.example.com\nSFTP_USERNAME=from-file\nS3_PREFIX=mbs\n"), 0600))

	cfg, err := loadConfig(profile)
	require.NoError(t, err)
	assert.Equal(t, "profile.example.com", cfg.Profile.Host)
	assert.Equal(t, "from-env", cfg.Profile.Username)
	assert.Equal(t, 0, cfg.Profile.Port)
	assert.Equal(t, "mbs", cfg.S3Prefix)
}

func TestLoadConfigErrors(t *testing.T) {
	clearConfigEnv(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("SFTP_PORT", "twenty-two")
	_, err = loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SFTP_PORT")
}
