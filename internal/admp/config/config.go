package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Address 是 API 服务的绑定地址
	// 可以通过环境变量 ADMP_ADDRESS 配置
	Address string `yaml:"address"`

	// DataDir 是 ADMP 数据目录
	// 用于存储迁移记录数据库
	// 可以通过环境变量 ADMP_DATA_DIR 配置
	// 默认：~/.local/share/admp
	DataDir string `yaml:"dataDir"`
}

// New 加载配置
// 优先级：环境变量 > 配置文件 > 默认值
// 配置文件路径通过环境变量 ADMP_CONFIG 指定，未指定时跳过
func New() (*Config, error) {
	cfg := &Config{
		Address: "0.0.0.0:7878",
		DataDir: defaultDataDir(),
	}

	if path := os.Getenv("ADMP_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if addr := os.Getenv("ADMP_ADDRESS"); addr != "" {
		cfg.Address = addr
	}
	if dir := os.Getenv("ADMP_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}

// loadFile 从 YAML 文件加载配置
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// defaultDataDir 获取默认数据目录
func defaultDataDir() string {
	// 1. 使用用户主目录下的 .local/share/admp
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "admp")
	}

	// 2. 如果无法获取主目录，使用当前目录下的 data
	return filepath.Join(".", "data")
}
