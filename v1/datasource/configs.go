package datasource

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/dal/v1/backend"
)

// Connection holds the network and authentication settings of one
// datasource.
type Connection struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DbName   string `yaml:"db_name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// ConnectionDetails holds pool tuning parameters. Zero values fall back to
// package defaults. The env tags are for the embedding application's
// environment loader; this package only reads the struct.
type ConnectionDetails struct {
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// DatasourceConfig declares one named datasource.
type DatasourceConfig struct {
	// Name is the handle queries resolve the datasource by. Names must be
	// unique within a Config.
	Name string `yaml:"name"`

	// Backend selects the database engine: "postgres" or "sqlserver".
	Backend string `yaml:"backend"`

	Connection        Connection        `yaml:"connection"`
	ConnectionDetails ConnectionDetails `yaml:"connection_details"`
}

// Kind parses the declared backend.
func (d DatasourceConfig) Kind() (backend.Kind, error) {
	return backend.ParseKind(d.Backend)
}

// Config is the top-level datasource configuration. The first declared
// datasource is the default one.
type Config struct {
	Datasources []DatasourceConfig `yaml:"datasources"`
}

// Validate checks the configuration for structural problems: at least one
// datasource, unique non-empty names, and a known backend for each entry.
func (c Config) Validate() error {
	if len(c.Datasources) == 0 {
		return ErrNoDatasources
	}
	seen := make(map[string]struct{}, len(c.Datasources))
	for _, d := range c.Datasources {
		if d.Name == "" {
			return fmt.Errorf("%w: datasource with empty name", ErrInvalidConfig)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateDatasource, d.Name)
		}
		seen[d.Name] = struct{}{}
		if _, err := d.Kind(); err != nil {
			return fmt.Errorf("%w: datasource %q: %v", ErrInvalidConfig, d.Name, err)
		}
	}
	return nil
}

// LoadConfig reads and validates a YAML datasource configuration file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading datasource config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing datasource config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
