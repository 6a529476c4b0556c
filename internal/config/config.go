package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	Name        string
	Environment string
	HTTPPort    string
	LogLevel    string
	LogFormat   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// ScoringConfig overrides the engine's default fit weights. Values must sum
// to something sensible but are not forced to 1; the engine clamps output.
type ScoringConfig struct {
	SkillWeight       float64
	PerformanceWeight float64
	FatigueWeight     float64
	DifficultyWeight  float64
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "workforce")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "workforce")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.ssl.mode", "disable")
	v.SetDefault("db.connect.timeout", "5s")
	v.SetDefault("db.pool.max.conns", 10)
	v.SetDefault("db.pool.min.conns", 2)
	v.SetDefault("db.pool.max.conn.lifetime", "1h")
	v.SetDefault("db.pool.max.conn.idletime", "15m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.ttl", "10m")

	v.SetDefault("scoring.skill.weight", 0.5)
	v.SetDefault("scoring.performance.weight", 0.25)
	v.SetDefault("scoring.fatigue.weight", 0.15)
	v.SetDefault("scoring.difficulty.weight", 0.10)

	cfg := Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			HTTPPort:    v.GetString("http.port"),
			LogLevel:    v.GetString("log.level"),
			LogFormat:   v.GetString("log.format"),
		},
		Database: DatabaseConfig{
			Host:                v.GetString("db.host"),
			Port:                v.GetString("db.port"),
			Name:                v.GetString("db.name"),
			User:                v.GetString("db.user"),
			Password:            v.GetString("db.password"),
			SSLMode:             v.GetString("db.ssl.mode"),
			ConnectTimeout:      v.GetDuration("db.connect.timeout"),
			PoolMaxConns:        v.GetInt32("db.pool.max.conns"),
			PoolMinConns:        v.GetInt32("db.pool.min.conns"),
			PoolMaxConnLifetime: v.GetDuration("db.pool.max.conn.lifetime"),
			PoolMaxConnIdleTime: v.GetDuration("db.pool.max.conn.idletime"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		Scoring: ScoringConfig{
			SkillWeight:       v.GetFloat64("scoring.skill.weight"),
			PerformanceWeight: v.GetFloat64("scoring.performance.weight"),
			FatigueWeight:     v.GetFloat64("scoring.fatigue.weight"),
			DifficultyWeight:  v.GetFloat64("scoring.difficulty.weight"),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.HTTPPort) == "" {
		return fmt.Errorf("invalid configuration: empty HTTP port")
	}
	w := cfg.Scoring
	for _, f := range []float64{w.SkillWeight, w.PerformanceWeight, w.FatigueWeight, w.DifficultyWeight} {
		if f < 0 || f > 1 {
			return fmt.Errorf("invalid configuration: scoring weight %v out of [0,1]", f)
		}
	}
	return nil
}
