package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Checks       ChecksConfig       `mapstructure:"checks"`
	Reports      ReportsConfig      `mapstructure:"reports"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type DictionariesConfig struct {
	Directory      string `mapstructure:"directory" validate:"required,dir"`
	SourceLanguage string `mapstructure:"source_language" validate:"required"`
	DownloadURL    string `mapstructure:"download_url" validate:"omitempty,url"`
}

type ChecksConfig struct {
	// Rules enabled in addition to the default rule set.
	Rules        []string `mapstructure:"rules"`
	MinSeverity  string   `mapstructure:"min_severity" validate:"omitempty,oneof=info warning error"`
	FailSeverity string   `mapstructure:"fail_severity" validate:"omitempty,oneof=info warning error"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required,dir"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pocheck")
	}

	v.SetDefault("dictionaries.directory", "dictionaries")
	v.SetDefault("dictionaries.source_language", "en")
	v.SetDefault("dictionaries.download_url", "https://raw.githubusercontent.com/potools/wordlists/main")
	v.SetDefault("checks.min_severity", "info")
	v.SetDefault("checks.fail_severity", "error")
	v.SetDefault("reports.directory", "reports")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "pocheck")

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "POCHECK_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind POCHECK_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "POCHECK_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind POCHECK_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate.Struct() > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
	}

	return &cfg, nil
}
