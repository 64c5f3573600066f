package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

type Config struct {
    Server     ServerConfig
    Database   DatabaseConfig
    Redis      RedisConfig
    Reconciler ReconcilerConfig
    Telemetry  TelemetryConfig
    Log        LogConfig
}

type ServerConfig struct {
    Host string
    Port int
    // RateLimit 全局限流：每秒放行的请求数与突发额度
    RateLimit float64 `mapstructure:"rate_limit"`
    RateBurst int     `mapstructure:"rate_burst"`
}

type DatabaseConfig struct {
    Driver          string `mapstructure:"driver"` // postgres | sqlite
    Host            string
    Port            int
    User            string
    Password        string
    DBName          string `mapstructure:"dbname"`
    SSLMode         string `mapstructure:"sslmode"`
    FilePath        string `mapstructure:"file_path"`
    MaxIdleConns    int    `mapstructure:"max_idle_conns"`
    MaxOpenConns    int    `mapstructure:"max_open_conns"`
    ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
    Enabled  bool   `mapstructure:"enabled"`
    Address  string `mapstructure:"address"`
    Password string `mapstructure:"password"`
    DB       int    `mapstructure:"db"`
    StatsTTL time.Duration `mapstructure:"stats_ttl"`
}

type ReconcilerConfig struct {
    Enabled   bool          `mapstructure:"enabled"`
    Interval  time.Duration `mapstructure:"interval"`
    BatchSize int           `mapstructure:"batch_size"`
}

type TelemetryConfig struct {
    TracingEnabled bool   `mapstructure:"tracing_enabled"`
    OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
    SentryDSN      string `mapstructure:"sentry_dsn"`
    ServiceName    string `mapstructure:"service_name"`
}

type LogConfig struct {
    Level string
}

// Load 读取 ./config/config.yaml（可缺省），环境变量覆盖文件值
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath("./config")
    v.AddConfigPath(".")

    v.SetDefault("server.host", "0.0.0.0")
    v.SetDefault("server.port", 8080)
    v.SetDefault("server.rate_limit", 200.0)
    v.SetDefault("server.rate_burst", 400)
    v.SetDefault("database.driver", "postgres")
    v.SetDefault("database.host", "localhost")
    v.SetDefault("database.port", 5432)
    v.SetDefault("database.user", "postgres")
    v.SetDefault("database.password", "postgres")
    v.SetDefault("database.dbname", "microblog")
    v.SetDefault("database.sslmode", "disable")
    v.SetDefault("database.file_path", "./data/microblog.db")
    v.SetDefault("database.max_idle_conns", 10)
    v.SetDefault("database.max_open_conns", 100)
    v.SetDefault("database.conn_max_lifetime", 60)
    v.SetDefault("redis.enabled", false)
    v.SetDefault("redis.address", "localhost:6379")
    v.SetDefault("redis.password", "")
    v.SetDefault("redis.db", 0)
    v.SetDefault("redis.stats_ttl", "30s")
    v.SetDefault("reconciler.enabled", true)
    v.SetDefault("reconciler.interval", "60s")
    v.SetDefault("reconciler.batch_size", 500)
    v.SetDefault("telemetry.tracing_enabled", false)
    v.SetDefault("telemetry.otlp_endpoint", "localhost:4318")
    v.SetDefault("telemetry.sentry_dsn", "")
    v.SetDefault("telemetry.service_name", "microblog")
    v.SetDefault("log.level", "info")

    v.SetEnvPrefix("MB")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        // 配置文件可选，读不到就用默认值 + 环境变量
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
