package main

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the inspector configuration. Flags override the config
// file.
type Config struct {
	CAFile               string `mapstructure:"ca_file"`
	KRLFile              string `mapstructure:"krl_file"`
	Verify               bool   `mapstructure:"verify"`
	AllowUnknownCritical bool   `mapstructure:"allow_unknown_critical_options"`
}

func setDefaults() {
	viper.BindPFlag("ca_file", pflag.Lookup("ca_file"))
	viper.BindPFlag("krl_file", pflag.Lookup("krl_file"))
	viper.BindPFlag("verify", pflag.Lookup("verify"))
}

// ReadConfig reads the configuration from a file into a Config struct.
// A missing file is not an error; flag values still apply.
func ReadConfig(path string) (*Config, error) {
	setDefaults()
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	viper.SetConfigFile(expanded)
	viper.SetConfigType("hcl")
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
