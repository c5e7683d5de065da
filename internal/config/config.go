package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/wordsub/internal/validation"
)

type Config struct {
	Substitution SubstitutionConfig `mapstructure:"substitution"`
	Messages     MessagesConfig     `mapstructure:"messages"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type SubstitutionConfig struct {
	InitialBufferBytes int `mapstructure:"initial_buffer_bytes" validate:"gte=1"`
	// MaxTokenBytes caps the token buffer; 0 leaves it unbounded.
	MaxTokenBytes     int `mapstructure:"max_token_bytes" validate:"gte=0"`
	OutputBufferBytes int `mapstructure:"output_buffer_bytes" validate:"gte=16"`
}

type MessagesConfig struct {
	Locale string `mapstructure:"locale" validate:"oneof=en de"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=1,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"gte=1"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
	envFiles  []string
}

// NewConfigLoader prepares a loader for configFile, or for
// $HOME/.config/wordsub/config.yaml when configFile is empty. envFiles are dotenv files loaded
// into the process environment before environment variables are bound.
func NewConfigLoader(configFile string, envFiles ...string) (*ConfigLoader, error) {
	validate, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$HOME/.config/wordsub")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
		envFiles:  envFiles,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	if len(loader.envFiles) > 0 {
		if err := godotenv.Load(loader.envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env files %v: %w", loader.envFiles, err)
		}
	}

	v.SetDefault("substitution.initial_buffer_bytes", 1024)
	v.SetDefault("substitution.max_token_bytes", 0)
	v.SetDefault("substitution.output_buffer_bytes", 4096)
	v.SetDefault("messages.locale", "en")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordsub")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 3)

	if err := v.BindEnv("messages.locale", "WORDSUB_LOCALE"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDSUB_LOCALE environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
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

	if errorMsgs := loader.validator.Struct(cfg); len(errorMsgs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
