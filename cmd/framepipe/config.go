package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xaionaro-go/framepipe/logger"
)

const envPrefix = "FRAMEPIPE"

type Config struct {
	PTS        []int         `mapstructure:"pts"`
	Chunk      time.Duration `mapstructure:"chunk"`
	Capacity   uint          `mapstructure:"capacity"`
	Shift      time.Duration `mapstructure:"shift"`
	Monotonic  bool          `mapstructure:"monotonic"`
	MinPTS     time.Duration `mapstructure:"min-pts"`
	LogLevel   string        `mapstructure:"log-level"`
	DumpConfig bool          `mapstructure:"dump-config"`
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("framepipe", pflag.ContinueOnError)
	flags.IntSlice("pts", []int{0, 10, 15, 30}, "PTS (in seconds) of the synthetic input frames")
	flags.Duration("chunk", 10*time.Second, "re-chunk the stream into slots of this duration; zero disables re-chunking")
	flags.Uint("capacity", 1, "capacity of the channel between the producer and the pipeline")
	flags.Duration("shift", 0, "add this offset to every PTS")
	flags.Bool("monotonic", false, "drop frames with PTS going backwards")
	flags.Duration("min-pts", 0, "drop frames with PTS lower than this")
	flags.String("log-level", logger.LevelWarning.String(), "log level")
	flags.String("config", "", "path to a config file (any format supported by viper)")
	flags.Bool("dump-config", false, "print the effective config")
	return flags
}

// loadConfig merges (in the ascending order of priority) the defaults,
// the config file, the FRAMEPIPE_* environment variables and the flags.
func loadConfig(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("unable to bind the flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath, _ := flags.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file '%s': %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse the config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Level() (logger.Level, error) {
	var level logger.Level
	if err := level.Set(cfg.LogLevel); err != nil {
		return level, fmt.Errorf("unable to parse log level '%s': %w", cfg.LogLevel, err)
	}
	return level, nil
}

func (cfg *Config) Frames() []time.Duration {
	result := make([]time.Duration, 0, len(cfg.PTS))
	for _, s := range cfg.PTS {
		result = append(result, time.Duration(s)*time.Second)
	}
	return result
}
