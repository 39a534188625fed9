package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fxsynth/internal/model"
)

type Config struct {
	Fxsynth   FxsynthConfig   `yaml:"fxsynth"`
	Generator GeneratorConfig `yaml:"generator"`
	Writer    WriterConfig    `yaml:"writer"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type FxsynthConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// GeneratorConfig holds the defaults applied to CLI options the user
// leaves unset.
type GeneratorConfig struct {
	Digits     int     `yaml:"digits"`
	Spread     int     `yaml:"spread"`
	Density    int     `yaml:"density"`
	Pattern    string  `yaml:"pattern"`
	Volatility float64 `yaml:"volatility"`
}

type WriterConfig struct {
	Format   string        `yaml:"format"`
	Formats  FormatsConfig `yaml:"formats"`
	Manifest bool          `yaml:"manifest"`
}

type FormatsConfig struct {
	Parquet ParquetConfig `yaml:"parquet"`
}

type ParquetConfig struct {
	Compression string `yaml:"compression"`
}

type StorageConfig struct {
	S3 S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	PathStyle       bool   `yaml:"path_style"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

// Default is the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Fxsynth: FxsynthConfig{
			Name:    "fxsynth",
			Version: "1.0",
		},
		Generator: GeneratorConfig{
			Digits:     5,
			Spread:     10,
			Density:    1,
			Pattern:    string(model.PatternNone),
			Volatility: 1.0,
		},
		Writer: WriterConfig{
			Format: "csv",
			Formats: FormatsConfig{
				Parquet: ParquetConfig{Compression: "snappy"},
			},
		},
		Logging: LoggingConfig{
			Level:  "warning",
			Format: "text",
			Output: "stderr",
		},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override S3 settings from environment variables if available.
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		config.Storage.S3.AccessKeyID = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		config.Storage.S3.SecretAccessKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.Storage.S3.Region = strings.TrimSpace(v)
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		config.Storage.S3.Bucket = strings.TrimSpace(v)
	}
	config.Storage.S3.Bucket = strings.TrimSpace(config.Storage.S3.Bucket)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Fxsynth.Name == "" {
		return fmt.Errorf("fxsynth.name is required")
	}

	if cfg.Generator.Digits <= 0 {
		return fmt.Errorf("generator.digits must be greater than 0")
	}
	if cfg.Generator.Spread < 0 {
		return fmt.Errorf("generator.spread must not be negative")
	}
	if cfg.Generator.Density <= 0 {
		return fmt.Errorf("generator.density must be greater than 0")
	}
	if cfg.Generator.Volatility <= 0 {
		return fmt.Errorf("generator.volatility must be greater than 0")
	}
	if _, err := model.ParsePattern(cfg.Generator.Pattern); err != nil {
		return fmt.Errorf("generator.pattern: %w", err)
	}

	switch cfg.Writer.Format {
	case "csv", "parquet":
	default:
		return fmt.Errorf("writer.format must be csv or parquet")
	}

	return nil
}
