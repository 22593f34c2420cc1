package config

import (
	"fmt"
	"strings"
	"sync"

	"availability-api/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Retention RetentionConfig `mapstructure:"retention"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RetentionConfig struct {
	// VoteRetentionDays is how long availability rows for past dates are
	// kept before the purge job removes them.
	VoteRetentionDays int `mapstructure:"vote_retention_days"`
	// PurgeSchedule is a cron expression for the purge job.
	PurgeSchedule string `mapstructure:"purge_schedule"`
}

var (
	instance    Config
	initialized bool
	mu          sync.RWMutex
)

// Load reads configuration from config.yaml (optional) and environment
// variables. Env vars win and use underscores, e.g. DATABASE_HOST.
func Load() error {
	// .env is optional; ignore when absent
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	instance = cfg
	initialized = true
	mu.Unlock()

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "availability")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")

	v.SetDefault("retention.vote_retention_days", constants.DefaultVoteRetentionDays)
	v.SetDefault("retention.purge_schedule", "0 3 * * *")
}

// Get returns the loaded configuration. Call Load first.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// GetSafe returns the configuration and whether Load has run.
func GetSafe() (Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, initialized
}
