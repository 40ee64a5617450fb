// shared/db/config.go
package db

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	DriverSQLite = "sqlite3"
	DriverLibSQL = "libsql"
)

// Config is the runtime configuration, read from ORDERFLOW_DRIVER,
// ORDERFLOW_SQLITE_PATH and ORDERFLOW_DEBUG. Only the Turso variables are
// also looked up without the prefix, under their historical names.
type Config struct {
	Driver      string
	SqlitePath  string `split_words:"true" default:"orderflow.db"`
	DatabaseURL string `envconfig:"TURSO_DATABASE_URL"`
	AuthToken   string `envconfig:"TURSO_AUTH_TOKEN"`
	Debug       bool   `default:"false"`
}

// LoadConfig layers .env, the saved settings file and the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "error loading .env file")
	}
	if err := UpdateEnvForDbConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("orderflow", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "error reading environment")
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
		if cfg.DatabaseURL != "" {
			cfg.Driver = DriverLibSQL
		}
	}
	return cfg, nil
}

// Validate reports missing settings for the selected driver.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.SqlitePath == "" {
			return errors.New("sqlite path is missing")
		}
	case DriverLibSQL:
		if c.DatabaseURL == "" {
			return errors.New("database URL is missing")
		}
		if c.AuthToken == "" {
			return errors.New("authentication token is missing")
		}
	default:
		return errors.Errorf("unknown database driver %q", c.Driver)
	}
	return nil
}

// dataSourceName builds the DSN handed to sql.Open.
func (c Config) dataSourceName() string {
	if c.Driver == DriverLibSQL {
		return c.DatabaseURL + "?authToken=" + c.AuthToken
	}
	return "file:" + c.SqlitePath + "?_foreign_keys=on"
}
