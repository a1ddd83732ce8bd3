package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ===========================
// 服務設定載入（YAML）
// ===========================

// EnvConfigPath 指定設定檔路徑的環境變數
const EnvConfigPath = "LUCKY_SPIN_CONFIG"

// DefaultConfigPath 未指定時的預設設定檔路徑
const DefaultConfigPath = "config.yaml"

// Duration 可從 "30m" 這類字串解析的時間長度欄位
type Duration time.Duration

// UnmarshalYAML 實作 yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std 轉換為標準庫 time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ServerConfig HTTP 服務設定
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig 資料庫設定
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SweepConfig 優惠券過期清掃設定
type SweepConfig struct {
	Interval Duration `yaml:"interval"`
}

// CouponConfig 優惠券代碼設定
type CouponConfig struct {
	CodePrefix string `yaml:"code_prefix"`
}

// LogConfig 日誌設定
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config 服務整體設定
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Coupon   CouponConfig   `yaml:"coupon"`
	Log      LogConfig      `yaml:"log"`
}

// Default 返回可直接運行的預設設定
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Database: DatabaseConfig{
			DSN: "lucky_spin.db",
		},
		Sweep: SweepConfig{
			Interval: Duration(time.Hour),
		},
		Coupon: CouponConfig{
			CodePrefix: "LS",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load 讀取設定檔並疊加在預設值之上
//
// 路徑解析順序：LUCKY_SPIN_CONFIG 環境變數 → config.yaml。
// 設定檔不存在時直接返回預設設定
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultConfigPath
	}
	return LoadFile(path)
}

// LoadFile 讀取指定路徑的設定檔
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn cannot be empty")
	}
	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("sweep.interval must be positive, got %s", c.Sweep.Interval.Std())
	}
	if c.Coupon.CodePrefix == "" {
		return fmt.Errorf("coupon.code_prefix cannot be empty")
	}
	return nil
}
