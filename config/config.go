package config

import (
    "fmt"
    "time"

    "github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
    Server   ServerConfig   `mapstructure:"server"`
    Database DatabaseConfig `mapstructure:"database"`
    JWT      JWTConfig      `mapstructure:"jwt"`
    Redis    RedisConfig    `mapstructure:"redis"`
    Log      LogConfig      `mapstructure:"log"`
    Sentry   SentryConfig   `mapstructure:"sentry"`
    Trace    TraceConfig    `mapstructure:"trace"`
}

type ServerConfig struct {
    Addr string `mapstructure:"addr"`
    Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // sqlite / postgres
    DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
    Secret string        `mapstructure:"secret"`
    TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
    Addr     string `mapstructure:"addr"`
    Password string `mapstructure:"password"`
    DB       int    `mapstructure:"db"`
}

type LogConfig struct {
    Level string `mapstructure:"level"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

type TraceConfig struct {
    // OTLP HTTP endpoint；为空则不启用链路追踪
    Endpoint string `mapstructure:"endpoint"`
}

// Load 读取配置：默认值 < config.yaml < 环境变量（MINIBLOG_ 前缀）
func Load() (*Config, error) {
    v := viper.New()

    v.SetDefault("server.addr", ":8080")
    v.SetDefault("server.mode", "debug")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "miniblog.db")
    v.SetDefault("jwt.secret", "dev-secret-change-me")
    v.SetDefault("jwt.ttl", 24*time.Hour)
    v.SetDefault("redis.addr", "")
    v.SetDefault("redis.db", 0)
    v.SetDefault("log.level", "info")

    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath(".")
    v.AddConfigPath("./config")
    if err := v.ReadInConfig(); err != nil {
        // 配置文件可选，仅默认值 + 环境变量也能跑
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, fmt.Errorf("read config: %w", err)
        }
    }

    v.SetEnvPrefix("MINIBLOG")
    v.AutomaticEnv()

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, fmt.Errorf("unmarshal config: %w", err)
    }
    return &cfg, nil
}
