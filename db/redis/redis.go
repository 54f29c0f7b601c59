package redis

import (
	"context"
	"fmt"
	"movie_discovery/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieDiscovery Redis Client:", pong, err, "]]")
}

func GetRedis(ctx context.Context, key string) (string, error) {
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

func DelRedis(ctx context.Context, keys ...string) (int64, error) {
	return redisClient.Del(ctx, keys...).Result()
}

func IncrRedis(ctx context.Context, key string) (int64, error) {
	return redisClient.Incr(ctx, key).Result()
}

func TTLRedis(ctx context.Context, key string) (time.Duration, error) {
	return redisClient.TTL(ctx, key).Result()
}

func ScanKeysRedis(ctx context.Context, pattern string, count int64) ([]string, error) {
	keys := make([]string, 0)
	var cursor uint64
	for {
		batch, next, err := redisClient.Scan(ctx, cursor, pattern, count).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

func InfoRedis(ctx context.Context, section string) (string, error) {
	return redisClient.Info(ctx, section).Result()
}
