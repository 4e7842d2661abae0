package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 GROWAGRAM_* 优先
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("GROWAGRAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return err
	}

	Cfg = cfg
	return nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := cfg.Timeline.Loc(); err != nil {
		return nil, fmt.Errorf("invalid timeline location: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("elastic.indices.report_index", "growagram_reports")
	v.SetDefault("mongo.database", "growagram")
	v.SetDefault("kafka_notify_consumer.topic", "growagram-notification")
	v.SetDefault("kafka_notify_consumer.group_id", "growagram-notification-group")
	v.SetDefault("seedfinder.url", "https://en.seedfinder.eu/api/json")
	v.SetDefault("seedfinder.timeout", 5)
	v.SetDefault("timeline.location", "UTC")
	v.SetDefault("jwt.ttl_hours", 24)
	v.SetDefault("upload.max_image_bytes", 4718592)
}

// Loc 解析时区，空值视为 UTC
func (c TimelineConfig) Loc() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Location)
}

// MustLoc 配置加载阶段已校验过时区
func (c TimelineConfig) MustLoc() *time.Location {
	loc, err := c.Loc()
	if err != nil {
		return time.UTC
	}
	return loc
}
