// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Trigger    TriggerConfig    `mapstructure:"trigger"`
	Directory  DirectoryConfig  `mapstructure:"directory"`
	Places     PlacesConfig     `mapstructure:"places"`
	PageSpeed  PageSpeedConfig  `mapstructure:"pagespeed"`
	Email      EmailConfig      `mapstructure:"email"`
	SMS        SMSConfig        `mapstructure:"sms"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
	Warmup     WarmupConfig     `mapstructure:"warmup"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
	Campaigns  []CampaignConfig `mapstructure:"campaigns"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
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
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TriggerConfig guards the cron endpoints. Every trigger call must carry the
// shared secret as a query parameter.
type TriggerConfig struct {
	Secret string `mapstructure:"secret"`
}

type DirectoryConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	PageSize int    `mapstructure:"page_size"`
	Timeout  int    `mapstructure:"timeout"`
}

type PlacesConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

type PageSpeedConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	APIKey         string               `mapstructure:"api_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// EmailConfig selects one of two interchangeable transport backends.
// Backend "smtp" dials the configured SMTP host directly; "bulk" posts to a
// managed bulk-sending provider with native rate controls.
type EmailConfig struct {
	Backend       string     `mapstructure:"backend"`
	Timezone      string     `mapstructure:"timezone"`
	SMTP          SMTPConfig `mapstructure:"smtp"`
	Bulk          BulkConfig `mapstructure:"bulk"`
	TrackBaseURL  string     `mapstructure:"track_base_url"`
	SMTPDelaySec  int        `mapstructure:"smtp_delay_seconds"`
	BulkDelaySec  int        `mapstructure:"bulk_delay_seconds"`
	WindowStartHr int        `mapstructure:"window_start_hour"`
	WindowEndHr   int        `mapstructure:"window_end_hour"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type BulkConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

type SMSConfig struct {
	BaseURL     string   `mapstructure:"base_url"`
	AccountSID  string   `mapstructure:"account_sid"`
	AuthToken   string   `mapstructure:"auth_token"`
	FromNumbers []string `mapstructure:"from_numbers"`
	Timeout     int      `mapstructure:"timeout"`
	DelaySec    int      `mapstructure:"delay_seconds"`
}

type PipelineConfig struct {
	ScoreBatchSize    int `mapstructure:"score_batch_size"`
	AssignBatchSize   int `mapstructure:"assign_batch_size"`
	SendBatchSize     int `mapstructure:"send_batch_size"`
	SourceDelayMillis int `mapstructure:"source_delay_millis"`
	ScoreDelayMillis  int `mapstructure:"score_delay_millis"`
	LockTTLMinutes    int `mapstructure:"lock_ttl_minutes"`
}

type WarmupConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
	Days            int `mapstructure:"days"`
	DailyLimit      int `mapstructure:"daily_limit"`
}

type MiddlewareConfig struct {
	RateLimit      int `mapstructure:"rate_limit"`
	RateLimitBurst int `mapstructure:"rate_limit_burst"`
}

// CampaignConfig describes one lead-source run per morning cycle.
type CampaignConfig struct {
	Label    string `mapstructure:"label"`
	Source   string `mapstructure:"source"` // "directory" or "places"
	Industry string `mapstructure:"industry"`
	City     string `mapstructure:"city"`
	Country  string `mapstructure:"country"`
	Limit    int    `mapstructure:"limit"`
	Active   bool   `mapstructure:"active"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("directory.page_size", 25)
	viper.SetDefault("directory.timeout", 15)
	viper.SetDefault("places.timeout", 15)
	viper.SetDefault("pagespeed.base_url", "https://www.googleapis.com/pagespeedonline/v5/runPagespeed")
	viper.SetDefault("pagespeed.timeout", 45)
	viper.SetDefault("pagespeed.circuit_breaker.max_requests", 3)
	viper.SetDefault("pagespeed.circuit_breaker.interval", 60)
	viper.SetDefault("pagespeed.circuit_breaker.timeout", 120)
	viper.SetDefault("pagespeed.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("pagespeed.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("email.backend", "smtp")
	viper.SetDefault("email.timezone", "America/New_York")
	viper.SetDefault("email.smtp_delay_seconds", 8)
	viper.SetDefault("email.bulk_delay_seconds", 2)
	viper.SetDefault("email.window_start_hour", 8)
	viper.SetDefault("email.window_end_hour", 18)
	viper.SetDefault("email.bulk.timeout", 15)
	viper.SetDefault("sms.timeout", 15)
	viper.SetDefault("sms.delay_seconds", 2)
	viper.SetDefault("pipeline.score_batch_size", 20)
	viper.SetDefault("pipeline.assign_batch_size", 50)
	viper.SetDefault("pipeline.send_batch_size", 50)
	viper.SetDefault("pipeline.source_delay_millis", 1500)
	viper.SetDefault("pipeline.score_delay_millis", 1000)
	viper.SetDefault("pipeline.lock_ttl_minutes", 15)
	viper.SetDefault("warmup.interval_minutes", 60)
	viper.SetDefault("warmup.days", 14)
	viper.SetDefault("warmup.daily_limit", 50)
	viper.SetDefault("middleware.rate_limit", 10)
	viper.SetDefault("middleware.rate_limit_burst", 20)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Trigger.Secret == "" {
		return nil, fmt.Errorf("trigger.secret is required")
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
