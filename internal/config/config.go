package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/clubpulse/survey-api/internal/logger"
	"github.com/clubpulse/survey-api/internal/validator"
)

type PostgresConfig struct {
	User               string        `validate:"required"`
	Password           string        `validate:"required"`
	Host               string        `validate:"required"`
	Database           string        `validate:"required"`
	MaxIdleConnections int           `validate:"required" mapstructure:"max_idle_connections"`
	MaxOpenConnections int           `validate:"required" mapstructure:"max_open_connections"`
	ConnectionTTL      time.Duration `validate:"required" mapstructure:"connection_ttl"`
	Port               int16         `validate:"required"`
}

type SlogConfig struct {
	Level int `mapstructure:"level"`
}

type GormLogConfig struct {
	Level        int  `mapstructure:"level"`
	TraceQueries bool `mapstructure:"trace_queries"`
}

type LoggingConfig struct {
	Gorm    GormLogConfig `mapstructure:"gorm"`
	App     SlogConfig    `mapstructure:"app"`
	UseOTLP bool          `mapstructure:"use_otlp"`
}

// RateLimitConfig caps submission attempts per client address. RedisHost
// switches the limiter from the in-process sliding window to a shared redis
// counter for multi-replica deployments.
type RateLimitConfig struct {
	RedisHost       string `mapstructure:"redis_host"`
	SubmitPerWindow int64  `mapstructure:"submit_per_window"`
	WindowSecs      int64  `mapstructure:"window_secs"`
	FailOpen        bool   `mapstructure:"fail_open"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// See surveyapi.yaml for an example config
type Config struct {
	Postgres             *PostgresConfig  `mapstructure:"postgres"  validate:"required"`
	Logging              *LoggingConfig   `mapstructure:"logging"`
	RateLimit            *RateLimitConfig `mapstructure:"ratelimit"`
	CORS                 *CORSConfig      `mapstructure:"cors"`
	ListenAddress        string           `mapstructure:"listen_address" validate:"required"`
	GracefulShutdownSecs int64            `mapstructure:"graceful_shutdown_secs"`
}

const (
	AppLogLevel                string = "logging.app.level"
	CORSAllowedOrigins         string = "cors.allowed_origins"
	EnvPrefix                  string = "surveyapi"
	GormLogLevel               string = "logging.gorm.level"
	GormTraceQueries           string = "logging.gorm.trace_queries"
	GracefulShutdownSecs       string = "graceful_shutdown_secs"
	ListenAddress              string = "listen_address"
	PostgresDatabase           string = "postgres.database"
	PostgresHost               string = "postgres.host"
	PostgresPassword           string = "postgres.password"
	PostgresPort               string = "postgres.port"
	PostgresUser               string = "postgres.user"
	PostgresMaxIdleConnections string = "postgres.max_idle_connections"
	PostgresMaxOpenConnections string = "postgres.max_open_connections"
	PostgresConnectonTTL       string = "postgres.connection_ttl"
	RateLimitFailOpen          string = "ratelimit.fail_open"
	RateLimitWindowSecs        string = "ratelimit.window_secs"
	RedisHost                  string = "ratelimit.redis_host"
	SubmitPerWindow            string = "ratelimit.submit_per_window"
	UseOTLP                    string = "logging.use_otlp"
)

var configReady = false
var config Config

func GetConfig() (*Config, error) {
	if configReady {
		logger.Logger.Debug("returning already-loaded config")
		return &config, nil
	}
	logger.Logger.Info("loading config")

	v := viper.New()

	v.SetConfigName("surveyapi")

	v.AddConfigPath("/etc/surveyapi/")
	v.AddConfigPath(".")

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AutomaticEnv()

	// workaround for https://github.com/spf13/viper/issues/761
	// bind env vars explicitly so they unmarshal into the nested struct
	err := v.BindEnv(PostgresPassword)
	if err != nil {
		return nil, err
	}
	err = v.BindEnv(PostgresUser)
	if err != nil {
		return nil, err
	}
	err = v.BindEnv(PostgresDatabase)
	if err != nil {
		return nil, err
	}

	v.SetDefault(ListenAddress, "[::]:8000")
	v.SetDefault(PostgresHost, "localhost")
	v.SetDefault(PostgresPort, 5432)
	v.SetDefault(PostgresMaxIdleConnections, 2)
	v.SetDefault(PostgresMaxOpenConnections, 10)
	v.SetDefault(PostgresConnectonTTL, 10*time.Minute)
	v.SetDefault(GormLogLevel, int(slog.LevelWarn))
	v.SetDefault(GormTraceQueries, false)
	v.SetDefault(AppLogLevel, int(slog.LevelInfo))

	v.SetDefault(RedisHost, "")
	v.SetDefault(SubmitPerWindow, 5)
	v.SetDefault(RateLimitWindowSecs, 60)
	v.SetDefault(RateLimitFailOpen, true)

	v.SetDefault(UseOTLP, false)

	v.SetDefault(CORSAllowedOrigins, []string{
		"http://localhost:8080",
		"http://127.0.0.1:8080",
	})

	v.SetDefault(GracefulShutdownSecs, 30)

	err = v.ReadInConfig()
	if err != nil {
		// ignore config file not found to allow pure env config;
		// viper returns ConfigFileNotFoundError by value
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	valid := validator.Create()
	err = valid.Validate(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	configReady = true
	return &config, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		url.QueryEscape(c.Postgres.User),
		url.QueryEscape(c.Postgres.Password),
		c.Postgres.Host, c.Postgres.Port,
		url.QueryEscape(c.Postgres.Database),
	)
}

func (c *RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSecs) * time.Second
}
