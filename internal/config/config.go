package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/sysline/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultLogLevel = "warning"

// Config holds the full option set for a single invocation. Every metric
// toggle is independent; disabling one never affects the others.
type Config struct {
	Minimal    bool   `mapstructure:"minimal"`
	Ratio      bool   `mapstructure:"ratio"`
	Saved      bool   `mapstructure:"saved"`
	NoCPU      bool   `mapstructure:"no_cpu"`
	NoCPUTemp  bool   `mapstructure:"no_cpu_temp"`
	NoRAM      bool   `mapstructure:"no_ram"`
	NoRAMCache bool   `mapstructure:"no_ram_cache"`
	NoZram     bool   `mapstructure:"no_zram"`
	NoSwap     bool   `mapstructure:"no_swap"`
	LogLevel   string `mapstructure:"log_level"`
}

// Load reads configuration from the optional TOML file and command line
// flags, flags taking precedence. The config file defaults to
// /etc/sysline.toml and can be pointed elsewhere via SYSLINE_CONFIG.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	errFactory := errors.New()
	config := &Config{}

	flags := pflag.NewFlagSet("sysline", pflag.ContinueOnError)
	flags.Bool("minimal", false, "Minimal output without icons or color")
	flags.Bool("ratio", false, "Show zram compression ratio if available")
	flags.Bool("saved", false, "Show zram saved percentage if available")
	flags.Bool("no-cpu", false, "Hide CPU usage")
	flags.Bool("no-cpu-temp", false, "Hide CPU temperature")
	flags.Bool("no-ram", false, "Hide RAM usage")
	flags.Bool("no-ram-cache", false, "Hide RAM cache usage")
	flags.Bool("no-zram", false, "Hide zram usage")
	flags.Bool("no-swap", false, "Hide swap usage")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")

	if err := flags.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)

	if path := os.Getenv("SYSLINE_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sysline")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags set on the command line override config file values
	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if !LogLevel(config.LogLevel).IsValid() {
		return nil, errFactory.WithData(errors.ErrInvalidLogLevel, config.LogLevel)
	}

	return config, nil
}
