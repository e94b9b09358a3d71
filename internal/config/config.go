package config

import (
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppPort string `yaml:"app_port" env:"APP_PORT" env-default:"9000"`

	// Firebase API 根地址，不含 /v0
	BaseURL string `yaml:"base_url" env:"HN_BASE_URL" env-default:"https://hacker-news.firebaseio.com"`

	// 定时刷新的 cron 表达式，留空表示不自动刷新
	RefreshSpec string `yaml:"refresh_cron" env:"REFRESH_CRON"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
}

// Load 读取配置：CONFIG_PATH 指向的 YAML 文件优先，其余来自环境变量与默认值
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"port":    cfg.AppPort,
		"base":    cfg.BaseURL,
		"refresh": cfg.RefreshSpec,
	}).Info("config loaded")
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("config: HN_BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: LOG_LEVEL")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.RefreshSpec != "" {
		if _, err := cron.ParseStandard(c.RefreshSpec); err != nil {
			return errors.Wrap(err, "config: REFRESH_CRON")
		}
	}
	return nil
}
