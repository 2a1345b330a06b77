package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config はプロセス起動時に一度だけ読み込む設定。
type Config struct {
	Port     string         `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	Discord  DiscordConfig  `yaml:"discord"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

type DiscordConfig struct {
	Token          string            `yaml:"token"`
	AppID          string            `yaml:"app_id"`
	GuildID        string            `yaml:"guild_id"`
	CommandTimeout time.Duration     `yaml:"command_timeout"`
	Notifications  bool              `yaml:"notifications"`
	DefaultChannel string            `yaml:"default_channel"`
	Channels       map[string]string `yaml:"channels"`
}

func defaults() Config {
	return Config{
		Port:     "8080",
		LogLevel: "info",
		Database: DatabaseConfig{Driver: DriverPostgres},
		Discord: DiscordConfig{
			CommandTimeout: 10 * time.Second,
			Notifications:  true,
			Channels:       map[string]string{},
		},
	}
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the environment.
// Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if cfg.Discord.Channels == nil {
		cfg.Discord.Channels = map[string]string{}
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Discord.Token, "DISCORD_TOKEN")
	setString(&cfg.Discord.AppID, "DISCORD_APP_ID")
	setString(&cfg.Discord.GuildID, "DISCORD_GUILD_ID")
	setString(&cfg.Discord.DefaultChannel, "DISCORD_NOTIFICATION_CHANNEL")
	cfg.Discord.CommandTimeout = envDuration("DISCORD_COMMAND_TIMEOUT", cfg.Discord.CommandTimeout)
	cfg.Discord.Notifications = envBool("NOTIFICATIONS_ENABLED", cfg.Discord.Notifications)

	for _, c := range domain.Categories() {
		key := "DISCORD_" + strings.ToUpper(string(c)) + "_CHANNEL"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.Discord.Channels[string(c)] = v
		}
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	return nil
}

// ChannelFor returns the notification channel of category, falling back to the
// default channel. An empty result means notifications are off for category.
func (c *Config) ChannelFor(category domain.Category) string {
	if id := c.Discord.Channels[string(category)]; id != "" {
		return id
	}
	return c.Discord.DefaultChannel
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
