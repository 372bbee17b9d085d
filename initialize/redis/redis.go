package redis

import (
	"context"
	"fmt"

	"buqian/global"
	"buqian/initialize/viper"

	"github.com/go-redis/redis/v8"
)

func Init(cfg *viper.RedisConfig) (err error) {
	global.GLOBAL_REDIS = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	_, err = global.GLOBAL_REDIS.Ping(context.Background()).Result()
	return err
}
