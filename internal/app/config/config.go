package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Scraper ScraperConfig `mapstructure:"scraper"`
	Model   ModelConfig   `mapstructure:"model"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port      string `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

// DatasetConfig 数据集配置
type DatasetConfig struct {
	// ArchiveURL 数据集压缩包下载地址（zip，内含五张 CSV 原始表）
	ArchiveURL string `mapstructure:"archive_url"`
	// RawDir 原始表所在目录（下载解压目标，或已有本地数据）
	RawDir string `mapstructure:"raw_dir"`
	// OutputDir 处理结果输出目录
	OutputDir string `mapstructure:"output_dir"`
	// ProcessedFile 处理后数据集文件名
	ProcessedFile string `mapstructure:"processed_file"`
	// DropDuplicates 状态过滤前是否去除完全重复行
	DropDuplicates bool `mapstructure:"drop_duplicates"`
}

// ScraperConfig 图书目录爬取配置（数据获取的爬取变体）
type ScraperConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	OutputFile string        `mapstructure:"output_file"`
	PageDelay  time.Duration `mapstructure:"page_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ModelConfig 模型训练配置
type ModelConfig struct {
	ArtifactFile    string  `mapstructure:"artifact_file"`
	ReportFile      string  `mapstructure:"report_file"`
	TestRatio       float64 `mapstructure:"test_ratio"`
	Seed            int64   `mapstructure:"seed"`
	MaxTextFeatures int     `mapstructure:"max_text_features"`
}

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// applyDefaults 填充缺省值
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "web"
	}
	if c.Dataset.RawDir == "" {
		c.Dataset.RawDir = "data/raw"
	}
	if c.Dataset.OutputDir == "" {
		c.Dataset.OutputDir = "output"
	}
	if c.Dataset.ProcessedFile == "" {
		c.Dataset.ProcessedFile = "processed_data.csv"
	}
	if c.Scraper.OutputFile == "" {
		c.Scraper.OutputFile = "scraped_books.csv"
	}
	if c.Scraper.PageDelay == 0 {
		c.Scraper.PageDelay = time.Second
	}
	if c.Scraper.Timeout == 0 {
		c.Scraper.Timeout = 30 * time.Second
	}
	if c.Model.ArtifactFile == "" {
		c.Model.ArtifactFile = "champion_model.json"
	}
	if c.Model.ReportFile == "" {
		c.Model.ReportFile = "training_report.json"
	}
	if c.Model.TestRatio == 0 {
		c.Model.TestRatio = 0.2
	}
	if c.Model.Seed == 0 {
		c.Model.Seed = 42
	}
	if c.Model.MaxTextFeatures == 0 {
		c.Model.MaxTextFeatures = 500
	}
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Dataset.RawDir == "" {
		return fmt.Errorf("dataset.raw_dir is required")
	}
	if c.Dataset.OutputDir == "" {
		return fmt.Errorf("dataset.output_dir is required")
	}
	if c.Model.TestRatio <= 0 || c.Model.TestRatio >= 1 {
		return fmt.Errorf("model.test_ratio must be in (0, 1)")
	}
	return nil
}
