package client

import (
	"Blog/config"
	"Blog/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password:    conf.Redis.Password,
		Username:    conf.Redis.Username,
		DB:          conf.Redis.Database,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		return nil, err
	}
	log.L.Info("redis client success")
	return client, nil
}
