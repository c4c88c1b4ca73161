package config

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

func asynqRedisOpt(v *viper.Viper) asynq.RedisClientOpt {
	host := v.GetString("redis.host")
	if host == "" {
		host = "127.0.0.1"
	}

	port := v.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func NewAsynqClient(v *viper.Viper) *asynq.Client {
	return asynq.NewClient(asynqRedisOpt(v))
}

func NewAsynqServer(v *viper.Viper) *asynq.Server {
	concurrency := v.GetInt("asynq.concurrency")
	if concurrency == 0 {
		concurrency = 10
	}

	return asynq.NewServer(asynqRedisOpt(v), asynq.Config{
		Concurrency: concurrency,
	})
}

// NewAsynqScheduler registers the periodic payment reconcile run. The
// interval comes from payment.reconcile_interval_minutes, default 5.
func NewAsynqScheduler(v *viper.Viper, taskType string) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(asynqRedisOpt(v), nil)

	minutes := v.GetInt("payment.reconcile_interval_minutes")
	if minutes == 0 {
		minutes = 5
	}

	spec := fmt.Sprintf("@every %dm", minutes)
	if _, err := scheduler.Register(spec, asynq.NewTask(taskType, nil)); err != nil {
		panic(err)
	}

	return scheduler
}
