package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient redis.UniversalClient

func tlsConfig(enabled bool) *tls.Config {
	if !enabled {
		return nil
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

// InitConnection builds the client from the loaded config and pings it
// once; the service cannot run without its cart store.
func InitConnection() {
	if AppConfigData.UseCluster {
		redisClient = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        RedisClusterConfigData.Hosts,
			Username:     RedisClusterConfigData.Username,
			Password:     RedisClusterConfigData.Password,
			TLSConfig:    tlsConfig(RedisClusterConfigData.EnableTLS),
			DialTimeout:  time.Duration(RedisConfigData.DialTimeoutSeconds) * time.Second,
			ReadTimeout:  time.Duration(RedisConfigData.OpTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(RedisConfigData.OpTimeoutSeconds) * time.Second,
			PoolSize:     RedisConfigData.PoolSize,
		})
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%s", RedisConfigData.Host, RedisConfigData.Port),
			Password:     RedisConfigData.Password,
			DB:           RedisConfigData.DB,
			TLSConfig:    tlsConfig(RedisConfigData.EnableTLS),
			DialTimeout:  time.Duration(RedisConfigData.DialTimeoutSeconds) * time.Second,
			ReadTimeout:  time.Duration(RedisConfigData.OpTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(RedisConfigData.OpTimeoutSeconds) * time.Second,
			PoolSize:     RedisConfigData.PoolSize,
			MaxRetries:   2,
		})
	}

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		panic(fmt.Sprintf("cannot connect to redis: %v", err))
	}
}

func GetClient() redis.UniversalClient {
	return redisClient
}
