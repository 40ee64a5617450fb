// shared/db/databaseManagement.go
package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const appConfigDirName = "OrderFlowManager"

// DatabaseConfig stores the connection details chosen in the settings dialog
type DatabaseConfig struct {
	Driver      string `json:"driver,omitempty"`
	SQLitePath  string `json:"sqlite_path,omitempty"`
	DatabaseURL string `json:"database_url"`
	AuthToken   string `json:"auth_token"`
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appConfigDir := filepath.Join(configDir, appConfigDirName)

	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appConfigDir, "database_config.json"), nil
}

// SaveDbConfig saves the database configuration to a JSON file
func SaveDbConfig(config DatabaseConfig) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, configJSON, 0600)
}

// LoadDbConfig loads the database configuration from the JSON file.
// A missing file is an empty config.
func LoadDbConfig() (DatabaseConfig, error) {
	configPath, err := getConfigFilePath()
	if err != nil {
		return DatabaseConfig{}, err
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DatabaseConfig{}, nil
		}
		return DatabaseConfig{}, err
	}

	var config DatabaseConfig
	err = json.Unmarshal(configData, &config)
	return config, err
}

// UpdateEnvForDbConfig copies the saved config into the environment without
// overriding variables that are already set.
func UpdateEnvForDbConfig() error {
	config, err := LoadDbConfig()
	if err != nil {
		return fmt.Errorf("error loading database config: %w", err)
	}

	setDefault := func(key, value string) {
		if value == "" {
			return
		}
		if _, set := os.LookupEnv(key); !set {
			os.Setenv(key, value)
		}
	}
	setDefault("ORDERFLOW_DRIVER", config.Driver)
	setDefault("ORDERFLOW_SQLITE_PATH", config.SQLitePath)
	setDefault("TURSO_DATABASE_URL", config.DatabaseURL)
	setDefault("TURSO_AUTH_TOKEN", config.AuthToken)

	return nil
}
