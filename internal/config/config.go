package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Logger    LoggerConfig
	Source    SourceConfig
	Page      PageConfig
	Questions QuestionsConfig
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// SourceConfig locates the document holding the question array and names
// the array variable to extract.
type SourceConfig struct {
	Path     string `yaml:"path"`
	Variable string `yaml:"variable"`
}

// PageConfig locates the quiz page and describes where new questions go.
// Marker is the trimmed content of the line the block is inserted before;
// when Marker is empty, InsertLine is used as a fixed 0-based line index.
type PageConfig struct {
	Path       string `yaml:"path"`
	Marker     string `yaml:"marker"`
	InsertLine int    `yaml:"insert_line"`
	Backup     bool   `yaml:"backup"`
}

// QuestionsConfig carries counters that only exist for the summary output.
type QuestionsConfig struct {
	AssumedPriorTotal int `yaml:"assumed_prior_total"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		// For test environment, look for config in the project root
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		// For production/development environment
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.SetDefault("page.marker", "];")
	viper.SetDefault("questions.assumed_prior_total", 422)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Log the config file being used. Goes to stderr so stdout stays
	// clean for the insertion summary.
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	config := &Config{
		Env: viper.GetString("env"),
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
		Source: SourceConfig{
			Path:     viper.GetString("source.path"),
			Variable: viper.GetString("source.variable"),
		},
		Page: PageConfig{
			Path:       viper.GetString("page.path"),
			Marker:     viper.GetString("page.marker"),
			InsertLine: viper.GetInt("page.insert_line"),
			Backup:     viper.GetBool("page.backup"),
		},
		Questions: QuestionsConfig{
			AssumedPriorTotal: viper.GetInt("questions.assumed_prior_total"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Env = env
		config.Logger.Env = env
	}
	if level := os.Getenv("LOGGER_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if sourcePath := os.Getenv("SOURCE_PATH"); sourcePath != "" {
		config.Source.Path = sourcePath
	}
	if variable := os.Getenv("SOURCE_VARIABLE"); variable != "" {
		config.Source.Variable = variable
	}
	if pagePath := os.Getenv("PAGE_PATH"); pagePath != "" {
		config.Page.Path = pagePath
	}
	if marker := os.Getenv("PAGE_MARKER"); marker != "" {
		config.Page.Marker = marker
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if c.Source.Variable == "" {
		return fmt.Errorf("source.variable is required")
	}
	if c.Page.Path == "" {
		return fmt.Errorf("page.path is required")
	}
	return nil
}
