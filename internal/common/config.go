package common

import (
	"os"
	"strconv"
	"time"

	"github.com/mazohq/beam-parser/constants"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Parser  ParserConfig
	Session SessionConfig
	History HistoryConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string
}

// LLMConfig holds the remote semantic parser configuration.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// ParserConfig holds batch orchestration and retry tuning. These were ambient
// module constants in earlier iterations; passing them explicitly lets
// deployments and tests override them.
type ParserConfig struct {
	ChunkSize      int
	ChunkDelay     time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	MaxBatchFiles  int
}

// SessionConfig holds per-session document caps.
type SessionConfig struct {
	MaxJobDescriptions int
	MaxResumes         int
}

// HistoryConfig holds the history store location.
type HistoryConfig struct {
	DBPath string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Parser: ParserConfig{
			ChunkSize:      getEnvAsInt("PARSER_CHUNK_SIZE", constants.DefaultChunkSize),
			ChunkDelay:     getEnvAsDuration("PARSER_CHUNK_DELAY", time.Second),
			RetryAttempts:  getEnvAsInt("PARSER_RETRY_ATTEMPTS", 3),
			RetryBaseDelay: getEnvAsDuration("PARSER_RETRY_BASE_DELAY", time.Second),
			MaxBatchFiles:  getEnvAsInt("PARSER_MAX_BATCH_FILES", constants.DefaultMaxBatchFiles),
		},
		Session: SessionConfig{
			MaxJobDescriptions: getEnvAsInt("SESSION_MAX_JOB_DESCRIPTIONS", constants.DefaultMaxJobDescriptions),
			MaxResumes:         getEnvAsInt("SESSION_MAX_RESUMES", constants.DefaultMaxResumes),
		},
		History: HistoryConfig{
			DBPath: getEnv("HISTORY_DB_PATH", "./data/history.db"),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrValidation)
	}
	if c.Parser.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSER_CHUNK_SIZE must be positive", ErrValidation)
	}
	if c.Parser.RetryAttempts <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSER_RETRY_ATTEMPTS must be positive", ErrValidation)
	}
	return nil
}

// Helper functions for environment variable parsing.
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
