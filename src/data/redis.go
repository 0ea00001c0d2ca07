package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const (
	blacklistKey   = "snowbot:blacklist"
	streamCommands = "snowbot.commands"
)

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// Blacklist membership cache. MySQL stays the source of truth; only positive
// hits are trusted, so a cold cache just costs one extra query.
func CacheBlacklistAdd(ctx context.Context, rdb *redis.Client, id string) error {
	return rdb.SAdd(ctx, blacklistKey, id).Err()
}

func CacheBlacklistRemove(ctx context.Context, rdb *redis.Client, id string) error {
	return rdb.SRem(ctx, blacklistKey, id).Err()
}

func CacheBlacklistHas(ctx context.Context, rdb *redis.Client, id string) (bool, error) {
	return rdb.SIsMember(ctx, blacklistKey, id).Result()
}

// PublishCommand appends a recognized command invocation to the event stream
// for any dashboard-side consumers.
func PublishCommand(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamCommands,
		Values: payload,
	}).Result()
	return err
}
