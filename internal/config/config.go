package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownSource               = errors.New("unknown question source")
	ErrUnknownDelivery             = errors.New("unknown delivery mode")
)

// Question source kinds.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Delivery modes.
const (
	DeliveryTerminal = "terminal"
	DeliveryWeb      = "web"
)

// Config holds application configuration loaded from files, environment variables and flags.
type Config struct {
	Env      string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Source   Source   `mapstructure:"source"`   // where the question document comes from
	Delivery Delivery `mapstructure:"delivery"` // how the quiz is presented
	Log      Log      `mapstructure:"log"`      // logging configuration section
	DB       DB       `mapstructure:"database"` // database configuration section
	Quiz     Quiz     `mapstructure:"quiz"`     // operator overrides for quiz settings
}

// Source describes the question document location.
type Source struct {
	Kind        string        `mapstructure:"kind"`         // file, http or postgres
	Path        string        `mapstructure:"path"`         // local file path for the file source
	URL         string        `mapstructure:"url"`          // document URL for the http source
	QuestionSet string        `mapstructure:"question_set"` // stored document name for the postgres source
	Timeout     time.Duration `mapstructure:"timeout"`      // fetch timeout, zero disables it
}

// Delivery configures the user-facing surface.
type Delivery struct {
	Mode string `mapstructure:"mode"` // terminal or web
	Addr string `mapstructure:"addr"` // listen address for the web surface
}

// Log configures the logger.
type Log struct {
	File  string `mapstructure:"file"`  // rotating log file, empty disables file output
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Quiz carries settings that override the question document.
type Quiz struct {
	Settings map[string]bool `mapstructure:"settings"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from an optional .env file, config files,
// environment variables and command line arguments, in increasing priority.
func Load(args []string) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("quiz", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a config file")
	flags.String("source", "", "question source: file, http or postgres")
	flags.String("path", "", "question document path for the file source")
	flags.String("url", "", "question document URL for the http source")
	flags.String("name", "", "question set name for the postgres source")
	flags.String("delivery", "", "delivery mode: terminal or web")
	flags.String("addr", "", "listen address for the web delivery")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("source.kind", SourceFile)
	v.SetDefault("source.path", "GP_2.json")
	v.SetDefault("source.question_set", "default")
	v.SetDefault("source.timeout", "0s")
	v.SetDefault("delivery.mode", DeliveryTerminal)
	v.SetDefault("delivery.addr", "127.0.0.1:8080")
	v.SetDefault("log.file", "logs/quiz.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Flags win over everything else when they are set.
	bindFlag(v, flags, "source.kind", "source")
	bindFlag(v, flags, "source.path", "path")
	bindFlag(v, flags, "source.url", "url")
	bindFlag(v, flags, "source.question_set", "name")
	bindFlag(v, flags, "delivery.mode", "delivery")
	bindFlag(v, flags, "delivery.addr", "addr")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Source.Kind {
	case SourceFile, SourceHTTP:
	case SourcePostgres:
		if _, err := c.DB.DSN(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source.Kind)
	}

	switch c.Delivery.Mode {
	case DeliveryTerminal, DeliveryWeb:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDelivery, c.Delivery.Mode)
	}

	if c.Source.Kind == SourceHTTP && c.Source.URL == "" {
		return fmt.Errorf("source url is required for the %s source", SourceHTTP)
	}

	return nil
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	_ = v.BindPFlag(key, flags.Lookup(name))
}
