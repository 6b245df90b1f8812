package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the stored credential profile and sink settings
type Config struct {
	Profile Item

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
}

// loadConfig reads the environment, seeded from profileFile when given or
// from ./.env when present. Variables already set in the environment win.
func loadConfig(profileFile string) (*Config, error) {
	if profileFile != "" {
		if err := godotenv.Load(profileFile); err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", profileFile, err)
		}
	} else if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables only")
	}

	port := 0
	if v := getEnv("SFTP_PORT", ""); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SFTP_PORT %q: %w", v, err)
		}
		port = p
	}

	cfg := &Config{
		Profile: Item{
			Host:     getEnv("SFTP_HOST", ""),
			Port:     port,
			Username: getEnv("SFTP_USERNAME", ""),
			Password: getEnv("SFTP_PASSWORD", ""),
		},
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Prefix:    getEnv("S3_PREFIX", ""),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
