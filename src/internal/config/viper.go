package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper loads config.json from the working directory and overlays
// environment variables (dots become underscores).
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	// a missing file is fine, env vars carry the config in that case
	_ = config.ReadInConfig()

	return config
}
