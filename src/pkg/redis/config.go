package redis

import (
	"strings"
)

type CfgRedis struct {
	UseCluster           bool
	EnableTLS            bool
	RedisHost            string
	RedisPort            string
	RedisPassword        string
	RedisDB              int
	RedisClusterNode     string
	RedisClusterPassword string
	PoolSize             int
	DialTimeoutSeconds   int
	OpTimeoutSeconds     int
}

type AppConfig struct {
	UseCluster bool
}

type RedisConfig struct {
	Host               string
	Port               string
	Password           string
	DB                 int
	EnableTLS          bool
	PoolSize           int
	DialTimeoutSeconds int
	OpTimeoutSeconds   int
}

type RedisClusterConfig struct {
	Hosts     []string
	Username  string
	Password  string
	EnableTLS bool
}

var (
	AppConfigData          AppConfig
	RedisConfigData        RedisConfig
	RedisClusterConfigData RedisClusterConfig
)

func LoadConfig(config *CfgRedis) {

	AppConfigData = AppConfig{
		UseCluster: config.UseCluster,
	}

	if config.PoolSize == 0 {
		config.PoolSize = 10
	}
	if config.DialTimeoutSeconds == 0 {
		config.DialTimeoutSeconds = 5
	}
	if config.OpTimeoutSeconds == 0 {
		config.OpTimeoutSeconds = 3
	}

	RedisConfigData = RedisConfig{
		Host:               config.RedisHost,
		Port:               config.RedisPort,
		Password:           config.RedisPassword,
		DB:                 config.RedisDB,
		EnableTLS:          config.EnableTLS,
		PoolSize:           config.PoolSize,
		DialTimeoutSeconds: config.DialTimeoutSeconds,
		OpTimeoutSeconds:   config.OpTimeoutSeconds,
	}

	RedisClusterConfigData = RedisClusterConfig{
		Hosts:     strings.Split(config.RedisClusterNode, ";"),
		Password:  config.RedisClusterPassword,
		EnableTLS: config.EnableTLS,
	}
}
