package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/spf13/viper"
)

// Dialect names double as output directory names.
const (
	DialectSQLite   = "SQLite"
	DialectMySQL    = "MySQL"
	DialectMSSQL    = "MSSQL"
	DialectPostgres = "Postgres"
)

// Dialects lists every supported SQL dialect in output order.
var Dialects = []string{DialectSQLite, DialectMySQL, DialectMSSQL, DialectPostgres}

type Config struct {
	Counts     Counts   `json:"counts" mapstructure:"counts"`
	Writers    Writers  `json:"writers" mapstructure:"writers"`
	SeedDir    string   `json:"seed_dir" mapstructure:"seed_dir"`
	RandomSeed int64    `json:"random_seed" mapstructure:"random_seed"`
	Release    string   `json:"release" mapstructure:"release"`
	Database   Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Product   int `json:"product" mapstructure:"product"`
	Address   int `json:"address" mapstructure:"address"`
	Customer  int `json:"customer" mapstructure:"customer"`
	Order     int `json:"order" mapstructure:"order"`
	OrderLine int `json:"order_line" mapstructure:"order_line"`
	Role      int `json:"role" mapstructure:"role"`
	User      int `json:"user" mapstructure:"user"`
	Theme     int `json:"theme" mapstructure:"theme"`
}

type Writers struct {
	Target   string   `json:"target" mapstructure:"target"`
	JSON     bool     `json:"json" mapstructure:"json"`
	YAML     bool     `json:"yaml" mapstructure:"yaml"`
	TOML     bool     `json:"toml" mapstructure:"toml"`
	CSV      bool     `json:"csv" mapstructure:"csv"`
	XML      bool     `json:"xml" mapstructure:"xml"`
	SQL      bool     `json:"sql" mapstructure:"sql"`
	Dialects []string `json:"dialects" mapstructure:"dialects"`
	SQLiteDB bool     `json:"sqlite_db" mapstructure:"sqlite_db"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Counts: Counts{
			Product:   1000,
			Address:   1000,
			Customer:  1000,
			Order:     3000,
			OrderLine: 5000,
			Role:      10,
			User:      200,
			Theme:     100,
		},
		Writers: Writers{
			Target:   "Generated",
			JSON:     true,
			YAML:     true,
			TOML:     true,
			CSV:      true,
			XML:      true,
			SQL:      true,
			Dialects: append([]string(nil), Dialects...),
		},
		Database: Database{URLEnv: "DATABASE_URL"},
	}
}

// SetDefaults registers Default() on v so that unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("counts.product", d.Counts.Product)
	v.SetDefault("counts.address", d.Counts.Address)
	v.SetDefault("counts.customer", d.Counts.Customer)
	v.SetDefault("counts.order", d.Counts.Order)
	v.SetDefault("counts.order_line", d.Counts.OrderLine)
	v.SetDefault("counts.role", d.Counts.Role)
	v.SetDefault("counts.user", d.Counts.User)
	v.SetDefault("counts.theme", d.Counts.Theme)
	v.SetDefault("writers.target", d.Writers.Target)
	v.SetDefault("writers.json", d.Writers.JSON)
	v.SetDefault("writers.yaml", d.Writers.YAML)
	v.SetDefault("writers.toml", d.Writers.TOML)
	v.SetDefault("writers.csv", d.Writers.CSV)
	v.SetDefault("writers.xml", d.Writers.XML)
	v.SetDefault("writers.sql", d.Writers.SQL)
	v.SetDefault("writers.dialects", d.Writers.Dialects)
	v.SetDefault("writers.sqlite_db", d.Writers.SQLiteDB)
	v.SetDefault("seed_dir", "")
	v.SetDefault("random_seed", 0)
	v.SetDefault("release", "")
	v.SetDefault("database.url_env", d.Database.URLEnv)
}

// Load reads the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v into a validated Config.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.CodeInvalidConfiguration, "failed to unmarshal config", err)
	}

	if cfg.Writers.Target == "" {
		cfg.Writers.Target = "Generated"
	}
	if len(cfg.Writers.Dialects) == 0 {
		cfg.Writers.Dialects = append([]string(nil), Dialects...)
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Count returns the configured record count for t.
func (c Config) Count(t schema.EntityType) int {
	switch t {
	case schema.Product:
		return c.Counts.Product
	case schema.Address:
		return c.Counts.Address
	case schema.Customer:
		return c.Counts.Customer
	case schema.Order:
		return c.Counts.Order
	case schema.OrderLine:
		return c.Counts.OrderLine
	case schema.Role:
		return c.Counts.Role
	case schema.User:
		return c.Counts.User
	case schema.Theme:
		return c.Counts.Theme
	}
	return 0
}

// WithCount returns a copy of c with t's count replaced.
func (c Config) WithCount(t schema.EntityType, n int) Config {
	switch t {
	case schema.Product:
		c.Counts.Product = n
	case schema.Address:
		c.Counts.Address = n
	case schema.Customer:
		c.Counts.Customer = n
	case schema.Order:
		c.Counts.Order = n
	case schema.OrderLine:
		c.Counts.OrderLine = n
	case schema.Role:
		c.Counts.Role = n
	case schema.User:
		c.Counts.User = n
	case schema.Theme:
		c.Counts.Theme = n
	}
	c.Writers.Dialects = append([]string(nil), c.Writers.Dialects...)
	return c
}

// OutputDir is the root all writers write under.
func (c Config) OutputDir() string {
	if c.Release == "" {
		return c.Writers.Target
	}
	return filepath.Join(c.Writers.Target, c.Release)
}

// CanonicalDialect maps a case-insensitive dialect name to its canonical form.
func CanonicalDialect(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return DialectSQLite, true
	case "mysql":
		return DialectMySQL, true
	case "mssql", "sqlserver":
		return DialectMSSQL, true
	case "postgres", "postgresql":
		return DialectPostgres, true
	}
	return "", false
}

func (c Config) Validate() error {
	for _, d := range schema.Entities() {
		if n := c.Count(d.Type); n < 0 {
			return apperrors.New(apperrors.CodeInvalidConfiguration, "count for %s cannot be negative: %d", d.Name(), n)
		}
	}

	if c.Writers.Target == "" {
		return apperrors.New(apperrors.CodeInvalidConfiguration, "writers.target cannot be empty")
	}

	if strings.ContainsAny(c.Release, `/\`) || c.Release == ".." {
		return apperrors.New(apperrors.CodeInvalidConfiguration, "release must be a plain name: %q", c.Release)
	}

	for _, name := range c.Writers.Dialects {
		if _, ok := CanonicalDialect(name); !ok {
			return apperrors.New(apperrors.CodeInvalidConfiguration,
				"unsupported SQL dialect: %s. Supported dialects: %v", name, Dialects)
		}
	}

	return nil
}

// GetDatabaseURL reads the connection string from the configured env var.
func (c Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", apperrors.New(apperrors.CodeInvalidConfiguration,
			"database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c Config) String() string {
	return fmt.Sprintf("target=%s release=%q seed=%d", c.OutputDir(), c.Release, c.RandomSeed)
}
