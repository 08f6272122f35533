package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel   string
	LogFormat  string
	LogFile    string
	Hex        bool
	Strategies []string
}

const envPrefix = "HAMMING84"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("LogLevel", "warn")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("LogFile", "")
	v.SetDefault("Hex", false)
	v.SetDefault("Strategies", []string{"single", "double"})
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// SetConfig reads configFile into v. An empty path keeps the defaults.
func SetConfig(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", configFile, err)
	}
	return nil
}

func LoadConfig(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
