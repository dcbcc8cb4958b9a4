package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用程序配置结构
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Verify  VerifyConfig  `mapstructure:"verify"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	Async  bool   `mapstructure:"async"`
}

// MetricsConfig 监控指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// VerifyConfig 校验行为配置
type VerifyConfig struct {
	Strict     bool   `mapstructure:"strict"`      // 解码前执行字段约束校验
	FailFast   bool   `mapstructure:"fail_fast"`   // 首个失败即退出
	Direction  string `mapstructure:"direction"`   // chargepoint 或 centralsystem
	ReportPath string `mapstructure:"report_path"` // 为空则不落盘
}

// Load 加载配置，优先级：环境变量 > 配置文件 > 默认值
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.async", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("verify.strict", true)
	v.SetDefault("verify.fail_fast", false)
	v.SetDefault("verify.direction", "chargepoint")
	v.SetDefault("verify.report_path", "")

	v.SetEnvPrefix("OCPP_CODEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	switch c.Verify.Direction {
	case "chargepoint", "centralsystem":
	default:
		return fmt.Errorf("invalid verify direction: %s", c.Verify.Direction)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}

// GetMetricsAddr 获取监控地址
func (c *Config) GetMetricsAddr() string {
	return c.Metrics.Addr
}
