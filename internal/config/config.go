package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HTMXMVC_SERVER_ADDR.
const EnvPrefix = "HTMXMVC"

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Views    ViewsConfig    `mapstructure:"views"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	HTMX     HTMXConfig     `mapstructure:"htmx"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ViewsConfig locates templates. An empty Dir uses the embedded views.
type ViewsConfig struct {
	Dir       string `mapstructure:"dir"`
	Root      string `mapstructure:"root"`
	Shared    string `mapstructure:"shared"`
	Extension string `mapstructure:"extension"`
	Layout    string `mapstructure:"layout"`
	Reload    bool   `mapstructure:"reload"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ThemeConfig selects the theme. An empty Manifests dir uses the bundled
// manifests.
type ThemeConfig struct {
	Name      string `mapstructure:"name"`
	Variant   string `mapstructure:"variant"`
	Manifests string `mapstructure:"manifests"`
}

// HTMXConfig holds client settings.
type HTMXConfig struct {
	ScriptURL string `mapstructure:"script_url"`
}

// Defaults returns the built-in configuration.
func Defaults() map[string]any {
	return map[string]any{
		"server.addr":             ":8080",
		"server.read_timeout":     "10s",
		"server.write_timeout":    "10s",
		"server.shutdown_timeout": "5s",
		"views.dir":               "",
		"views.root":              "Views",
		"views.shared":            "Shared",
		"views.extension":         ".html",
		"views.layout":            "_Layout",
		"views.reload":            false,
		"database.path":           "htmxmvc.db",
		"log.level":               "info",
		"log.development":         false,
		"theme.name":              "default",
		"theme.variant":           "",
		"theme.manifests":         "",
		"htmx.script_url":         "https://unpkg.com/htmx.org@1.9.12",
	}
}

// Load reads configuration from defaults, an optional file and env. When
// path is empty an "htmxmvc" config in the working directory is used if
// present.
func Load(path string) (Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("htmxmvc")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, c.Validate()
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server.addr is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("config: server.shutdown_timeout must not be negative")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("config: database.path is required")
	}
	if c.Views.Reload && strings.TrimSpace(c.Views.Dir) == "" {
		return errors.New("config: views.reload needs views.dir")
	}
	return nil
}
