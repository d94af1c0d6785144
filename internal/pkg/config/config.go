package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Export  ExportConfig
	Locale  string
}

type ServerConfig struct {
	Port      string
	Host      string
	BodyLimit int64 // bytes, max accepted HAR upload
}

type SessionConfig struct {
	TTL          time.Duration
	Backend      string // "memory" or "redis"
	RedisAddr    string
	ProbeWorkers int
}

type ExportConfig struct {
	Backend  string // "local" or "s3"
	Dir      string // local archive directory
	S3Bucket string
	S3Region string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "3000"),
			Host:      getEnv("SERVER_HOST", "localhost"),
			BodyLimit: getEnvAsInt64("MAX_HAR_SIZE", 256*1024*1024), // 256MB
		},
		Session: SessionConfig{
			TTL:          getEnvAsDuration("SESSION_TTL", time.Hour),
			Backend:      getEnv("SESSION_BACKEND", "memory"),
			RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
			ProbeWorkers: getEnvAsInt("PROBE_WORKERS", 4),
		},
		Export: ExportConfig{
			Backend:  getEnv("EXPORT_BACKEND", "local"),
			Dir:      getEnv("EXPORT_DIR", "exports"),
			S3Bucket: getEnv("EXPORT_S3_BUCKET", ""),
			S3Region: getEnv("EXPORT_S3_REGION", "us-east-1"),
		},
		Locale: getEnv("LOCALE", "en"),
	}

	return config
}

// EnsureDirs creates the local export directory when that backend is active.
func (c *Config) EnsureDirs() error {
	if c.Export.Backend == "local" {
		return os.MkdirAll(c.Export.Dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
