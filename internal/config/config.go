// Package config reads the service configuration from the environment.
// main loads a .env file first (when present) via godotenv.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultDataFile     = "hospital_data.csv"
	DefaultArchiveFile  = "hospital_archive.db"
	DefaultAutosaveSpec = "@every 5m"
)

// Config holds the paths and scheduling knobs for a session.
type Config struct {
	// DataFile is the flat file the directory is saved to and loaded from.
	DataFile string
	// ArchiveFile is the bolt database keeping snapshot history.
	ArchiveFile string
	// AutosaveSpec is a cron spec (robfig/cron syntax, @every supported).
	AutosaveSpec string
	// AutosaveEnabled turns the background autosave job on or off.
	AutosaveEnabled bool
}

// LoadEnvFile loads a .env file into the process environment. A missing
// file is logged and ignored.
func LoadEnvFile(logger *log.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Println("config: no .env file loaded, using environment and defaults")
	}
}

// Load builds the configuration from environment variables, falling back
// to defaults for anything unset.
func Load() Config {
	return Config{
		DataFile:        envOr("HOSPITAL_DATA_FILE", DefaultDataFile),
		ArchiveFile:     envOr("HOSPITAL_ARCHIVE_FILE", DefaultArchiveFile),
		AutosaveSpec:    envOr("HOSPITAL_AUTOSAVE_CRON", DefaultAutosaveSpec),
		AutosaveEnabled: envBool("HOSPITAL_AUTOSAVE", true),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
