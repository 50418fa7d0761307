package commands

import (
	"errors"

	"recobench/pkg/unit"

	"github.com/spf13/viper"
)

type Config struct {
	Sizes      []string               `mapstructure:"sizes"`
	Algorithms []string               `mapstructure:"algorithms"`
	TopK       int                    `mapstructure:"top_k"`
	Provider   string                 `mapstructure:"provider"`
	Format     string                 `mapstructure:"format"`
	Output     string                 `mapstructure:"output"`
	LogDir     string                 `mapstructure:"log_dir"`
	LogFormat  string                 `mapstructure:"log_format"`
	Units      map[string]unit.Config `mapstructure:"units"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".recobench")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
