package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Storage   StorageConfig
	Antivirus AntivirusConfig
	Extract   ExtractConfig
	ML        MLConfig
	Rules     RulesConfig
	Search    SearchConfig
	Bus       BusConfig
	Preview   PreviewConfig
	Watcher   WatcherConfig
	Log       LogConfig
}

// LogConfig holds logging output configuration
type LogConfig struct {
	File  string
	Level string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// StorageConfig holds content store (MinIO) configuration
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AntivirusConfig holds ClamAV daemon configuration
type AntivirusConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Timeout  time.Duration
	FailOpen bool // allow uploads when the scanner is unreachable
}

// ExtractConfig holds text extraction configuration
type ExtractConfig struct {
	MaxTextLength int
}

// MLConfig holds classifier service configuration
type MLConfig struct {
	BaseURL            string
	Timeout            time.Duration
	AutoClassify       bool
	SuggestThreshold   float64
	AutoApplyThreshold float64
}

// RulesConfig holds automation rule engine configuration
type RulesConfig struct {
	Enabled bool
}

// SearchConfig holds search index (Cassandra/Scylla) configuration
type SearchConfig struct {
	Enabled  bool
	Hosts    []string
	Keyspace string
}

// BusConfig holds message bus (RabbitMQ) configuration
type BusConfig struct {
	URL   string
	Queue string
}

// PreviewConfig holds preview queue configuration
type PreviewConfig struct {
	QueueEnabled bool
	MaxAttempts  int
	RetryDelay   time.Duration
	PollInterval time.Duration
	BatchSize    int
	RunAsUser    string
	MaxPages     int
	Backoff      string // "fixed" or "exponential"
}

// WatcherConfig holds drop-folder ingestion configuration
type WatcherConfig struct {
	Roots       []string
	InitialScan bool
	Debounce    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "docshelf-content"),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
		},
		Antivirus: AntivirusConfig{
			Enabled:  getEnvAsBool("CLAMAV_ENABLED", false),
			Host:     getEnv("CLAMAV_HOST", "localhost"),
			Port:     getEnvAsInt("CLAMAV_PORT", 3310),
			Timeout:  getEnvAsDuration("CLAMAV_TIMEOUT", 30*time.Second),
			FailOpen: getEnvAsBool("CLAMAV_FAIL_OPEN", true),
		},
		Extract: ExtractConfig{
			MaxTextLength: getEnvAsInt("EXTRACT_MAX_TEXT_LENGTH", 10*1024*1024),
		},
		ML: MLConfig{
			BaseURL:            getEnv("ML_SERVICE_URL", ""),
			Timeout:            getEnvAsDuration("ML_TIMEOUT", 15*time.Second),
			AutoClassify:       getEnvAsBool("ML_AUTO_CLASSIFY", true),
			SuggestThreshold:   getEnvAsFloat64("ML_SUGGEST_THRESHOLD", 0.7),
			AutoApplyThreshold: getEnvAsFloat64("ML_AUTO_APPLY_THRESHOLD", 0.85),
		},
		Rules: RulesConfig{
			Enabled: getEnvAsBool("RULES_ENABLED", true),
		},
		Search: SearchConfig{
			Enabled:  getEnvAsBool("SEARCH_ENABLED", true),
			Hosts:    getEnvAsSlice("CASSANDRA_HOSTS", []string{"localhost"}),
			Keyspace: getEnv("CASSANDRA_KEYSPACE", "docshelf"),
		},
		Bus: BusConfig{
			URL:   getEnv("RABBITMQ_URL", ""),
			Queue: getEnv("RABBITMQ_QUEUE", "docshelf.events"),
		},
		Preview: PreviewConfig{
			QueueEnabled: getEnvAsBool("PREVIEW_QUEUE_ENABLED", true),
			MaxAttempts:  getEnvAsInt("PREVIEW_MAX_ATTEMPTS", 3),
			RetryDelay:   getEnvAsDuration("PREVIEW_RETRY_DELAY", 60*time.Second),
			PollInterval: getEnvAsDuration("PREVIEW_POLL_INTERVAL", 2*time.Second),
			BatchSize:    getEnvAsInt("PREVIEW_BATCH_SIZE", 2),
			RunAsUser:    getEnv("PREVIEW_RUN_AS_USER", "system"),
			MaxPages:     getEnvAsInt("PREVIEW_MAX_PAGES", 50),
			Backoff:      getEnv("PREVIEW_BACKOFF", "fixed"),
		},
		Watcher: WatcherConfig{
			Roots:       getEnvAsSlice("WATCH_DIRS", nil),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", true),
			Debounce:    getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Log: LogConfig{
			File:  getEnv("LOG_FILE", ""),
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required", ErrInvalidInput)
	}
	if c.Preview.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "PREVIEW_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
