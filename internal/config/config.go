package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type BannerConfig struct {
	Text     string        `mapstructure:"text"`
	Interval time.Duration `mapstructure:"interval"` // between scroll frames
}

type BuzzerConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Frequency int           `mapstructure:"frequency"` // Hz
	Pulse     time.Duration `mapstructure:"pulse"`     // length of each beep
	Gap       time.Duration `mapstructure:"gap"`       // silence between beeps
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type KeypadConfig struct {
	EdgeTriggered bool `mapstructure:"edge_triggered"` // swallow held-key repeats
	QueueLimit    int  `mapstructure:"queue_limit"`
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // empty means the data dir
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // used while the TUI owns the terminal
}

type Config struct {
	Theme        string        `mapstructure:"theme"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Banner       BannerConfig  `mapstructure:"banner"`
	Buzzer       BuzzerConfig  `mapstructure:"buzzer"`
	Notify       NotifyConfig  `mapstructure:"notify"`
	Keypad       KeypadConfig  `mapstructure:"keypad"`
	Journal      JournalConfig `mapstructure:"journal"`
	Log          LogConfig     `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Theme:        "default",
		TickInterval: 50 * time.Millisecond,
		Banner: BannerConfig{
			Text:     " Welcome to the ardruino kitchen timer. ",
			Interval: 150 * time.Millisecond,
		},
		Buzzer: BuzzerConfig{
			Enabled:   true,
			Frequency: 500,
			Pulse:     300 * time.Millisecond,
			Gap:       200 * time.Millisecond,
		},
		Notify:  NotifyConfig{Enabled: true},
		Keypad:  KeypadConfig{EdgeTriggered: false, QueueLimit: 32},
		Journal: JournalConfig{Enabled: true},
		Log:     LogConfig{Level: "info"},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "keytimer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads ~/.config/keytimer/config.yaml on top of the defaults.
// KEYTIMER_* environment variables override both.
func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit config file. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("keytimer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("tick_interval", cfg.TickInterval)
	v.SetDefault("banner.text", cfg.Banner.Text)
	v.SetDefault("banner.interval", cfg.Banner.Interval)
	v.SetDefault("buzzer.enabled", cfg.Buzzer.Enabled)
	v.SetDefault("buzzer.frequency", cfg.Buzzer.Frequency)
	v.SetDefault("buzzer.pulse", cfg.Buzzer.Pulse)
	v.SetDefault("buzzer.gap", cfg.Buzzer.Gap)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)
	v.SetDefault("keypad.edge_triggered", cfg.Keypad.EdgeTriggered)
	v.SetDefault("keypad.queue_limit", cfg.Keypad.QueueLimit)
	v.SetDefault("journal.enabled", cfg.Journal.Enabled)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, fmt.Errorf("config read: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the timer cannot run with.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.Banner.Interval <= 0 {
		return fmt.Errorf("banner.interval must be positive, got %s", c.Banner.Interval)
	}
	if c.Buzzer.Frequency < 20 || c.Buzzer.Frequency > 20000 {
		return fmt.Errorf("buzzer.frequency %d Hz is outside 20..20000", c.Buzzer.Frequency)
	}
	return nil
}

// JournalPath returns the configured journal file or the default under
// ~/.local/share/keytimer.
func (c Config) JournalPath() (string, error) {
	if p := strings.TrimSpace(c.Journal.Path); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "keytimer", "journal.db"), nil
}
