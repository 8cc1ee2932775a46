package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	logConfig "github.com/ncobase/habits/logging/logger/config"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HABITS_SERVER_PORT.
const EnvPrefix = "HABITS"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Protocol string
	Host     string
	Port     int
	Logger   *logConfig.Config
	Paging   *Paging
	Hateoas  *Hateoas
	Viper    *viper.Viper
}

// Loader reads and reloads one configuration source.
type Loader struct {
	mu   sync.RWMutex
	path string
	v    *viper.Viper
	cfg  *Config
}

// NewLoader creates a loader for the given file; an empty path searches the
// default locations and falls back to defaults when no file exists.
func NewLoader(path string) *Loader {
	return &Loader{path: path, v: viper.New()}
}

// LoadConfig loads the configuration from the file.
func LoadConfig(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// Load reads the configuration source.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := l.v
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.path != "" {
		v.SetConfigFile(l.path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/habits")
		v.AddConfigPath("$HOME/.habits")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l.cfg = cfg
	return cfg, nil
}

// Config returns the last loaded configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Watch watches the configuration file and reloads it when it changes.
// Reload failures are passed to onError and keep the previous configuration.
func (l *Loader) Watch(callback func(*Config), onError func(error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.Load()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("failed to reload config %s: %w", e.Name, err))
			}
			return
		}
		callback(cfg)
	})
	l.v.WatchConfig()
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Protocol: v.GetString("server.protocol"),
		Host:     v.GetString("server.host"),
		Port:     v.GetInt("server.port"),
		Logger:   logConfig.GetConfig(v),
		Paging:   getPagingConfig(v),
		Hateoas:  getHateoasConfig(v),
		Viper:    v,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "habits")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.protocol", "http")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	logConfig.SetDefaults(v)
	setPagingDefaults(v)
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Port)
	}
	return c.Paging.Validate()
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
