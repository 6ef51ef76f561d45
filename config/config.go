package config

import (
	"errors"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	DatabaseCacheReset   int    `mapstructure:"DB_CACHE_RESET"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	SchedulerEnabled     bool   `mapstructure:"SCHEDULER_ENABLED"`
	WearRetentionDays    int    `mapstructure:"WEAR_RETENTION_DAYS"`
	DefaultTimezone      string `mapstructure:"DEFAULT_TIMEZONE"`
}

var ConfigInstance Config

var envVars = []string{
	"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"DB_CACHE_ADDRESS", "DB_CACHE_PORT", "DB_CACHE_RESET",
	"CORS_ALLOW_ORIGINS", "JWT_SECRET",
	"SCHEDULER_ENABLED", "WEAR_RETENTION_DAYS", "DEFAULT_TIMEZONE",
}

func New() (Config, error) {
	log := logger.New("config").Function("New")
	log.Info("Initializing config")

	viper.AutomaticEnv()
	setDefaults()

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	log.Info(
		"Successfully initialized config",
		"environment", config.Environment,
		"port", config.ServerPort,
		"timezone", config.DefaultTimezone,
		"cacheEnabled", config.CacheEnabled(),
	)
	return ConfigInstance, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", 8288)
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_CACHE_RESET", -1)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("WEAR_RETENTION_DAYS", 365)
	viper.SetDefault("DEFAULT_TIMEZONE", "UTC")
}

func GetConfig() Config {
	return ConfigInstance
}

// CacheEnabled reports whether a valkey address is configured.
func (c Config) CacheEnabled() bool {
	return c.DatabaseCacheAddress != "" && c.DatabaseCachePort > 0
}

// Location resolves DefaultTimezone, falling back to UTC when unset.
func (c Config) Location() (*time.Location, error) {
	if c.DefaultTimezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.DefaultTimezone)
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.JWTSecret == "" {
		return log.Err("Fatal error: JWT_SECRET is required", errors.New("missing jwt secret"))
	}

	if config.WearRetentionDays <= 0 {
		return log.Error(
			"Fatal error: WEAR_RETENTION_DAYS must be positive",
			"days", config.WearRetentionDays,
		)
	}

	if _, err := config.Location(); err != nil {
		return log.Err(
			"Fatal error: invalid DEFAULT_TIMEZONE",
			err,
			"timezone", config.DefaultTimezone,
		)
	}

	ConfigInstance = config
	return nil
}
