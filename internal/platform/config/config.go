package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultMaxBatchSize caps the number of SSINs accepted per batch request.
const DefaultMaxBatchSize = 100

// Server captures HTTP server level configuration.
type Server struct {
	Addr         string
	Environment  string
	LogLevel     slog.Level
	MaxBatchSize int
}

// IsProduction reports whether the service runs with production defaults.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// LoadDotEnv loads variables from path into the process environment without
// overriding values already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SSIN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := strings.ToLower(os.Getenv("SSIN_ENV"))
	if env == "" {
		env = "development"
	}

	return Server{
		Addr:         addr,
		Environment:  env,
		LogLevel:     parseLevel(os.Getenv("SSIN_LOG_LEVEL")),
		MaxBatchSize: parsePositiveInt(os.Getenv("SSIN_MAX_BATCH"), DefaultMaxBatchSize),
	}
}

func parseLevel(v string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parsePositiveInt(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
