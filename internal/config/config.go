package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firstpost/journal/internal/pkg/mail"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
	defaultBaseURL    = "http://localhost:3000"

	// Database drivers selectable via database.driver.
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	defaultSQLitePath = "data/firstpost.db"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoName  = "firstpost"

	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int
	Env            string // "development" | "production"
	BaseURL        string
	JWTSecret      string
	AllowedOrigins []string
	Database       DatabaseConfig
	Mail           mail.Config
	Admin          AdminConfig
}

// DatabaseConfig selects and parameterizes the persistence backend.
type DatabaseConfig struct {
	Driver string
	SQLite SQLiteConfig
	Mongo  MongoConfig
}

type SQLiteConfig struct {
	Path string
}

type MongoConfig struct {
	URI  string
	Name string
}

// AdminConfig seeds the initial admin credential on first start.
type AdminConfig struct {
	Username string
	Password string
}

func (c *AppConfig) IsDev() bool { return c.Env != "production" }

type rawAppConfig struct {
	Port               int            `yaml:"port"`
	Env                string         `yaml:"env"`
	NodeEnv            string         `yaml:"node_env"`
	BaseURL            string         `yaml:"base_url"`
	SiteURL            string         `yaml:"site_url"`
	JWTSecret          string         `yaml:"jwt_secret"`
	AllowedOrigins     []string       `yaml:"allowed_origins"`
	CORSAllowedOrigins []string       `yaml:"cors_allowed_origins"`
	Database           rawDatabaseCfg `yaml:"database"`
	MongoURI           string         `yaml:"mongo_uri"`
	Mail               mail.Config    `yaml:"mail"`
	Admin              rawAdminCfg    `yaml:"admin"`
}

type rawDatabaseCfg struct {
	Driver string `yaml:"driver"`
	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
	Mongo struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"mongo"`
}

type rawAdminCfg struct {
	Username string `yaml:"username"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Load reads and validates the YAML config at configPath. A missing
// file is not an error; all defaults apply so a fresh checkout starts
// against the embedded SQLite store.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	raw := rawAppConfig{}
	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	cfg := normalize(raw)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverMongo {
		return nil, fmt.Errorf("invalid database driver %q in %q, expected %q or %q",
			cfg.Database.Driver, path, DriverSQLite, DriverMongo)
	}
	return &cfg, nil
}
