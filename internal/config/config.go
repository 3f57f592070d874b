package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default-date policies for the transaction form in create mode.
const (
	DefaultDateToday = "today"
	DefaultDateEmpty = "empty"
)

type Config struct {
	// Store backend: memory | sqlite
	DataBackend string

	// Logging. The terminal owns stdout, so logs go to a file; an
	// empty path discards them.
	LogFile  string
	LogLevel string

	// Table pagination.
	PageSize int

	// Transaction form: what the date field starts as in create mode.
	DefaultDate string
}

func Load() *Config {
	return &Config{
		DataBackend: getEnv("FINBOARD_BACKEND", "memory"),
		LogFile:     getEnv("FINBOARD_LOG_FILE", ""),
		LogLevel:    getEnv("FINBOARD_LOG_LEVEL", "info"),
		PageSize:    getEnvInt("FINBOARD_PAGE_SIZE", 10),
		DefaultDate: getEnv("FINBOARD_DEFAULT_DATE", DefaultDateToday),
	}
}

// PageSizes are the row counts the table pagination offers.
var PageSizes = []int{5, 10, 15}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var errs []string

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid backend %q: must be one of memory, sqlite", c.DataBackend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel))
	}

	validSize := false
	for _, n := range PageSizes {
		if c.PageSize == n {
			validSize = true
			break
		}
	}
	if !validSize {
		errs = append(errs, fmt.Sprintf("invalid page size %d: must be one of %v", c.PageSize, PageSizes))
	}

	switch c.DefaultDate {
	case DefaultDateToday, DefaultDateEmpty:
	default:
		errs = append(errs, fmt.Sprintf("invalid default date policy %q: must be today or empty", c.DefaultDate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}
