package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/objectid/pkg/database"
)

// Config contains the objectid CLI configuration.
type Config struct {
	// LogLevel is the level of logging to use. Defaults to "info".
	LogLevel string `hcl:"log_level,optional"`

	// Database configures the database the seed command writes to.
	Database *Database `hcl:"database,block"`
}

// Database configures the database connection.
type Database struct {
	// Driver is "postgres" or "sqlite".
	Driver string `hcl:"driver"`

	// Path is the SQLite database file.
	Path string `hcl:"path,optional"`

	// PostgreSQL connection settings.
	Host     string `hcl:"host,optional"`
	Port     int    `hcl:"port,optional"`
	User     string `hcl:"user,optional"`
	Password string `hcl:"password,optional"`
	DBName   string `hcl:"dbname,optional"`
	SSLMode  string `hcl:"sslmode,optional"`

	// MaxOpenConns caps the connection pool. Zero uses the default.
	MaxOpenConns int `hcl:"max_open_conns,optional"`
}

// NewConfig parses an HCL configuration file, applies defaults and validates
// the result.
func NewConfig(filename string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Database != nil && cfg.Database.Driver == database.DriverPostgres && cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error", "off")),
		validation.Field(&c.Database, validation.Required),
	)
}

// Validate validates the database block.
func (d Database) Validate() error {
	postgres := d.Driver == database.DriverPostgres
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver,
			validation.Required,
			validation.In(database.DriverPostgres, database.DriverSQLite)),
		validation.Field(&d.Path,
			validation.When(d.Driver == database.DriverSQLite, validation.Required)),
		validation.Field(&d.Host, validation.When(postgres, validation.Required)),
		validation.Field(&d.DBName, validation.When(postgres, validation.Required)),
		validation.Field(&d.Port, validation.Min(0), validation.Max(65535)),
		validation.Field(&d.MaxOpenConns, validation.Min(0)),
	)
}

// DatabaseConfig converts the block into a database.Config.
func (d Database) DatabaseConfig() database.Config {
	return database.Config{
		Driver:       d.Driver,
		Host:         d.Host,
		Port:         d.Port,
		User:         d.User,
		Password:     d.Password,
		DBName:       d.DBName,
		SSLMode:      d.SSLMode,
		Path:         d.Path,
		MaxOpenConns: d.MaxOpenConns,
	}
}
