package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Content is a yaml file with the page text; empty uses the built-in poem
	Content string `mapstructure:"content"`

	// Music is a .wav or .mp3 file; empty plays the synthesized pad
	Music string `mapstructure:"music"`

	// Color is auto, truecolor or 256
	Color string `mapstructure:"color"`

	// Seed fixes the random source; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	Debug bool `mapstructure:"debug"`
	Mute  bool `mapstructure:"mute"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{Color: "auto"}
}

// Load reads configuration from file, env and flags, in increasing priority.
// Env var overrides use prefix STARLIT_. An explicit path must exist; the
// default location ($XDG_CONFIG_HOME/starlit/config.*) is optional.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("content", def.Content)
	v.SetDefault("music", def.Music)
	v.SetDefault("color", def.Color)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("mute", def.Mute)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "starlit"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STARLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
