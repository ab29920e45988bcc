package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// SALESETL_PATHS_DATA_DIR.
const envPrefix = "SALESETL"

// configFileName is the optional YAML config file looked up in the working
// directory.
const configFileName = "config.yaml"

// Input file names expected inside the data directory.
const (
	ProductsFile    = "products.csv"
	OrderHeaderFile = "sales_order_header.csv"
	OrderDetailFile = "sales_order_detail.csv"
)

// Config is the complete pipeline configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// PathsConfig contains the file system locations the pipeline reads and
// writes.
type PathsConfig struct {
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	DatabasePath string `yaml:"database_path" envconfig:"DATABASE_PATH" validate:"required"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:      "data",
			DatabasePath: "salesetl.db",
			OutputDir:    "output",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: filepath.Join("logs", "pipeline.log"),
		},
	}
}

// Load builds the configuration from defaults, the optional config.yaml in
// the working directory, and environment variables, in increasing order of
// precedence, then validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(configFileName); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFileName, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ProductsPath returns the full path of the product master input file.
func (p PathsConfig) ProductsPath() string {
	return filepath.Join(p.DataDir, ProductsFile)
}

// OrderHeaderPath returns the full path of the order header input file.
func (p PathsConfig) OrderHeaderPath() string {
	return filepath.Join(p.DataDir, OrderHeaderFile)
}

// OrderDetailPath returns the full path of the order line input file.
func (p PathsConfig) OrderDetailPath() string {
	return filepath.Join(p.DataDir, OrderDetailFile)
}

// EnsureOutputDir creates the output directory if it does not exist.
func (p PathsConfig) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}
