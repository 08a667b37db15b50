package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig    `toml:"app"`
	Auth   AuthConfig   `toml:"auth"`
	MySQL  MySQLConfig  `toml:"mysql"`
	Redis  RedisConfig  `toml:"redis"`
	Upload UploadConfig `toml:"upload"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	JWTExpireMinute int    `toml:"jwt_expire_minute"`
}

type MySQLConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DB           string `toml:"db"`
	Params       string `toml:"params"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

type RedisConfig struct {
	Enabled             bool   `toml:"enabled"`
	Addr                string `toml:"addr"`
	Password            string `toml:"password"`
	DB                  int    `toml:"db"`
	ItemsTTLSeconds     int    `toml:"items_ttl_seconds"`
	ItemsDirtyTTLSecond int    `toml:"items_dirty_ttl_seconds"`
}

type UploadConfig struct {
	Dir string `toml:"dir"`
}

func Load() (*Config, error) {
	// A .env file, when present, feeds the same overrides as real env vars.
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.MySQL.User,
		c.MySQL.Password,
		c.MySQL.Host,
		c.MySQL.Port,
		c.MySQL.DB,
		c.MySQL.Params,
	)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "closet-manager",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			JWTSecret:       "change-me-in-production",
			JWTExpireMinute: 120,
		},
		MySQL: MySQLConfig{
			Host:     "127.0.0.1",
			Port:     3306,
			User:     "root",
			Password: "",
			DB:       "closet_manager",
			Params:   "parseTime=true&loc=Local&charset=utf8mb4",

			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Redis: RedisConfig{
			Enabled:             true,
			Addr:                "127.0.0.1:6379",
			Password:            "",
			DB:                  0,
			ItemsTTLSeconds:     60,
			ItemsDirtyTTLSecond: 5,
		},
		Upload: UploadConfig{
			Dir: "uploads",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTExpireMinute = getEnvAsInt("JWT_EXPIRE_MINUTE", cfg.Auth.JWTExpireMinute)

	cfg.MySQL.Host = getEnv("MYSQL_HOST", cfg.MySQL.Host)
	cfg.MySQL.Port = getEnvAsInt("MYSQL_PORT", cfg.MySQL.Port)
	cfg.MySQL.User = getEnv("MYSQL_USER", cfg.MySQL.User)
	cfg.MySQL.Password = getEnv("MYSQL_PASSWORD", cfg.MySQL.Password)
	cfg.MySQL.DB = getEnv("MYSQL_DB", cfg.MySQL.DB)
	cfg.MySQL.Params = getEnv("MYSQL_PARAMS", cfg.MySQL.Params)
	cfg.MySQL.MaxOpenConns = getEnvAsInt("MYSQL_MAX_OPEN_CONNS", cfg.MySQL.MaxOpenConns)
	cfg.MySQL.MaxIdleConns = getEnvAsInt("MYSQL_MAX_IDLE_CONNS", cfg.MySQL.MaxIdleConns)

	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.ItemsTTLSeconds = getEnvAsInt("REDIS_ITEMS_TTL_SECONDS", cfg.Redis.ItemsTTLSeconds)
	cfg.Redis.ItemsDirtyTTLSecond = getEnvAsInt("REDIS_ITEMS_DIRTY_TTL_SECONDS", cfg.Redis.ItemsDirtyTTLSecond)

	cfg.Upload.Dir = getEnv("UPLOAD_DIR", cfg.Upload.Dir)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
