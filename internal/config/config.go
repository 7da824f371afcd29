package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob the server reads from the environment.
type Config struct {
	Port     string
	LogLevel string

	// DatabaseDriver selects the storage backend: "postgres" or "sqlite".
	DatabaseDriver string
	SQLiteDSN      string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// TestMode switches storage to a transient in-memory database and
	// silences SQL statement logging.
	TestMode bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional; the docker compose setup injects real env vars instead.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		LogLevel:         "info",
		DatabaseDriver:   "postgres",
		SQLiteDSN:        ":memory:",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	envPort := os.Getenv("PORT")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envDatabaseDriver := os.Getenv("DATABASE_DRIVER")
	envSQLiteDSN := os.Getenv("SQLITE_DSN")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envTestMode := os.Getenv("TEST_MODE")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envDatabaseDriver) != 0 {
		if envDatabaseDriver != "postgres" && envDatabaseDriver != "sqlite" {
			return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", envDatabaseDriver)
		}
		env.DatabaseDriver = envDatabaseDriver
	}

	if len(envSQLiteDSN) != 0 {
		env.SQLiteDSN = envSQLiteDSN
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if envTestMode == "true" || envTestMode == "1" {
		env.TestMode = true
	}

	return &env, nil
}

// PostgresDSN assembles the connection string for the configured postgres
// instance.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresAddress, c.PostgresPort, c.PostgresUsername, c.PostgresPassword, c.PostgresDB)
}

// TestConfig returns the configuration the test suites run under: a
// transient in-memory sqlite database that is created fresh per test.
func TestConfig() *Config {
	return &Config{
		Port:           "9446",
		LogLevel:       "error",
		DatabaseDriver: "sqlite",
		SQLiteDSN:      ":memory:",
		TestMode:       true,
	}
}
