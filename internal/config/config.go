// Package config loads console settings from .weighbridge.yaml, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/weighbridge/internal/pos"
	"github.com/csheth/weighbridge/internal/scale"
)

// EnvPrefix namespaces environment overrides, e.g. WEIGHBRIDGE_ONLINE.
const EnvPrefix = "WEIGHBRIDGE"

// ConfigPathEnv names an extra directory searched for the config file.
const ConfigPathEnv = EnvPrefix + "_CONFIG_PATH"

// Scale holds the simulator and capture settings.
type Scale struct {
	Tick           time.Duration `mapstructure:"tick"`
	Settle         time.Duration `mapstructure:"settle"`
	MinWeight      int           `mapstructure:"min_weight"`
	StartWeight    int           `mapstructure:"start_weight"`
	Increment      int           `mapstructure:"increment"`
	UnstableChance float64       `mapstructure:"unstable_chance"`
}

// Config is the resolved configuration.
type Config struct {
	FieldLimit   int           `mapstructure:"field_limit"`
	PaletteLimit int           `mapstructure:"palette_limit"`
	RecentLimit  int           `mapstructure:"recent_limit"`
	SyncDelay    time.Duration `mapstructure:"sync_delay"`
	Online       bool          `mapstructure:"online"`
	Seed         int64         `mapstructure:"seed"`
	AltScreen    bool          `mapstructure:"alt_screen"`
	LogFile      string        `mapstructure:"log_file"`
	Scale        Scale         `mapstructure:"scale"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"online":     "online",
	"seed":       "seed",
	"log-file":   "log_file",
	"alt-screen": "alt_screen",
	"sync-delay": "sync_delay",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("field_limit", pos.DefaultFieldLimit)
	v.SetDefault("palette_limit", pos.DefaultPaletteLimit)
	v.SetDefault("recent_limit", pos.DefaultRecentLimit)
	v.SetDefault("sync_delay", pos.DefaultSyncDelay)
	v.SetDefault("online", true)
	v.SetDefault("seed", 0)
	v.SetDefault("alt_screen", true)
	v.SetDefault("log_file", "")
	v.SetDefault("scale.tick", 700*time.Millisecond)
	v.SetDefault("scale.settle", pos.DefaultSettleDelay)
	v.SetDefault("scale.min_weight", scale.DefaultMinWeight)
	v.SetDefault("scale.start_weight", scale.DefaultStartWeight)
	v.SetDefault("scale.increment", pos.DefaultIncrement)
	v.SetDefault("scale.unstable_chance", scale.DefaultUnstableChance)
}

// Load resolves the configuration. Flags that were set on the command line
// win over the environment, which wins over the file. A missing file is not
// an error.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".weighbridge") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the console cannot run with.
func (c Config) Validate() error {
	switch {
	case c.FieldLimit <= 0 || c.PaletteLimit <= 0 || c.RecentLimit <= 0:
		return fmt.Errorf("result limits must be positive (field=%d palette=%d recent=%d)", c.FieldLimit, c.PaletteLimit, c.RecentLimit)
	case c.SyncDelay < 0:
		return fmt.Errorf("sync_delay must not be negative: %s", c.SyncDelay)
	case c.Scale.Tick <= 0:
		return fmt.Errorf("scale.tick must be positive: %s", c.Scale.Tick)
	case c.Scale.Increment <= 0:
		return fmt.Errorf("scale.increment must be positive: %d", c.Scale.Increment)
	case c.Scale.UnstableChance < 0 || c.Scale.UnstableChance > 1:
		return fmt.Errorf("scale.unstable_chance must be within [0,1]: %v", c.Scale.UnstableChance)
	}
	return nil
}

// Console converts the settings for pos.NewConsole.
func (c Config) Console() pos.Config {
	return pos.Config{
		FieldLimit:     c.FieldLimit,
		PaletteLimit:   c.PaletteLimit,
		RecentLimit:    c.RecentLimit,
		ScaleIncrement: c.Scale.Increment,
		SyncDelay:      c.SyncDelay,
		SettleDelay:    c.Scale.Settle,
		Online:         c.Online,
	}
}

// Simulator converts the settings for scale.NewSimulator.
func (c Config) Simulator() scale.Config {
	return scale.Config{
		StartWeight:    c.Scale.StartWeight,
		MinWeight:      c.Scale.MinWeight,
		UnstableChance: c.Scale.UnstableChance,
	}
}

// SeedValue returns the random seed, falling back to the clock when unset.
func (c Config) SeedValue() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
