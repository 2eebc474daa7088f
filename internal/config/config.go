package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string
	LogMode  string

	MongoURI        string
	PrimaryDBName   string
	CustomDataDB    string
	HistoryDBName   string
	ConnectTimeout  time.Duration
	DefaultEditorID string

	AuthMode    string
	AdminAPIKey string

	PolicyBundlePath string

	RateLimitRequests      int
	RateLimitWindowSeconds int
	RateLimitMaxKeys       int
	RateLimitFailClosed    bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:               addr,
		LogMode:                envDefault("LOG_MODE", "dev"),
		MongoURI:               os.Getenv("MONGODB_URI"),
		PrimaryDBName:          envDefault("MONGODB_PRIMARY_DB", "aiidprod"),
		CustomDataDB:           envDefault("MONGODB_CUSTOM_DATA_DB", "customData"),
		HistoryDBName:          envDefault("MONGODB_HISTORY_DB", "history"),
		ConnectTimeout:         time.Duration(envIntDefault("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		DefaultEditorID:        os.Getenv("DEFAULT_EDITOR_ID"),
		AuthMode:               envDefault("AUTH_MODE", "none"),
		AdminAPIKey:            os.Getenv("ADMIN_API_KEY"),
		PolicyBundlePath:       os.Getenv("POLICY_BUNDLE_PATH"),
		RateLimitRequests:      envIntDefault("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindowSeconds: envIntDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitMaxKeys:       envIntDefault("RATE_LIMIT_MAX_KEYS", 10000),
		RateLimitFailClosed:    envBoolDefault("RATE_LIMIT_FAIL_CLOSED", false),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
	}
}

func (c Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}
