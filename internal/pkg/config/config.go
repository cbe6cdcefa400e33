package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB credentials)
// - default: values common across environments (window times, intervals)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Schedule ScheduleConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// DBConfig is only consulted when ENGINE_STORE=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"arcade"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"arcade_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID,X-User-Role"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ScheduleConfig seeds the shop schedule at startup; the running values are
// owned by the scheduling engine afterwards.
type ScheduleConfig struct {
	OpenTime  string `envconfig:"SHOP_OPEN_TIME" default:"09:00"`
	CloseTime string `envconfig:"SHOP_CLOSE_TIME" default:"23:00"`
	AutoMode  bool   `envconfig:"SHOP_AUTO_SCHEDULE" default:"true"`
}

type EngineConfig struct {
	// Store selects the backing store: "memory" or "postgres".
	Store         string        `envconfig:"ENGINE_STORE" default:"memory"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	SeedDemoData  bool          `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
