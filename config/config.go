package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const DefaultApiKey = "CHANGE_ME"

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`
	GinMode string `json:"gin_mode"`

	Database    string `json:"database"` // "sqlite3" ou "postgres"
	DbHost      string `json:"db_host"`
	DbPort      string `json:"db_port"`
	DbUser      string `json:"db_user"`
	DbName      string `json:"db_name"` // no sqlite3 é o caminho do arquivo (ou ":memory:")
	DbPass      string `json:"db_pass"`
	DbLog       bool   `json:"db_log"`
	AutoMigrate bool   `json:"auto_migrate"`

	Security struct {
		// ApiKey é o segredo compartilhado exigido no header X-API-Key.
		ApiKey string `json:"api_key"`
	} `json:"security"`
}

// envOverrides são lidas depois do arquivo; valor vazio não sobrescreve.
type envOverrides struct {
	ApiKey      string `envconfig:"API_KEY"`
	ApiPort     string `envconfig:"PORT"`
	LogPath     string `envconfig:"LOG_PATH"`
	GinMode     string `envconfig:"GIN_MODE"`
	Database    string `envconfig:"DATABASE"`
	DbHost      string `envconfig:"DB_HOST"`
	DbPort      string `envconfig:"DB_PORT"`
	DbUser      string `envconfig:"DB_USER"`
	DbName      string `envconfig:"DB_NAME"`
	DbPass      string `envconfig:"DB_PASS"`
	AutoMigrate *bool  `envconfig:"AUTOMIGRATE"`
}

// Load reads the JSON file at path (missing file is allowed), then .env and
// the process environment, and finally fills defaults.
func Load(path string) (Configuration, error) {
	var c Configuration

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &c); err != nil {
			return Configuration{}, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config file %s not found, using environment only", path)
	default:
		return Configuration{}, fmt.Errorf("unable to read config file %s: %w", path, err)
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found")
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return Configuration{}, fmt.Errorf("unable to get envconfig: %w", err)
	}
	c.apply(env)
	c.setDefaults()

	return c, nil
}

// Get is Load for process bootstrap: any error is fatal.
func Get(path string) Configuration {
	c, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

func (c *Configuration) apply(env envOverrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Security.ApiKey, env.ApiKey)
	set(&c.ApiPort, env.ApiPort)
	set(&c.LogPath, env.LogPath)
	set(&c.GinMode, env.GinMode)
	set(&c.Database, env.Database)
	set(&c.DbHost, env.DbHost)
	set(&c.DbPort, env.DbPort)
	set(&c.DbUser, env.DbUser)
	set(&c.DbName, env.DbName)
	set(&c.DbPass, env.DbPass)
	if env.AutoMigrate != nil {
		c.AutoMigrate = *env.AutoMigrate
	}
}

// defaults (pra evitar nil/zero chato)
func (c *Configuration) setDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.IsSqlite() && c.DbName == "" {
		c.DbName = "db/database.db"
	}
	if c.Security.ApiKey == "" {
		log.Println("API_KEY not configured, falling back to the default key")
		c.Security.ApiKey = DefaultApiKey
	}
}

func (c Configuration) IsSqlite() bool {
	return c.Database != "postgres" && c.Database != "postgresql"
}
