package cmd

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config carries all runtime settings of the service. Values come from the
// environment; Validate reports every missing setting at once instead of
// failing on the first.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MigrationsPath string

	// StalePendingAfter is how long a request may stay pending before the
	// stale pending job reports it.
	StalePendingAfter time.Duration
}

// Validate checks that all required settings are present.
func (c Config) Validate() error {
	var result *multierror.Error

	required := map[string]string{
		"HTTP_PORT":   c.HTTPPort,
		"DB_HOST":     c.DBHost,
		"DB_PORT":     c.DBPort,
		"DB_USER":     c.DBUser,
		"DB_PASSWORD": c.DBPassword,
		"DB_NAME":     c.DBName,
		"DB_SSLMODE":  c.DBSslMode,
	}
	for name, value := range required {
		if value == "" {
			result = multierror.Append(result, fmt.Errorf("%s is not set", name))
		}
	}

	if c.StalePendingAfter <= 0 {
		result = multierror.Append(result, fmt.Errorf("STALE_PENDING_AFTER must be a positive duration"))
	}

	return result.ErrorOrNil()
}

// DSN builds the postgres connection string from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
