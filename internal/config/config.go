package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultBoards = 4
	defaultFormat = "diagram"
)

// Config 发牌工具配置
type Config struct {
	Dealer DealerConfig `yaml:"dealer"`
}

// DealerConfig 发牌配置
type DealerConfig struct {
	Boards int    `yaml:"boards"` // 生成的副数
	Seed   uint64 `yaml:"seed"`   // 随机种子，0 表示每次随机
	Format string `yaml:"format"` // 输出格式：diagram 或 json
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Dealer.Boards == 0 {
		cfg.Dealer.Boards = defaultBoards
	}
	if cfg.Dealer.Format == "" {
		cfg.Dealer.Format = defaultFormat
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Dealer: DealerConfig{
			Boards: defaultBoards,
			Format: defaultFormat,
		},
	}
}
