package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	fingerprintPrefix = "novanews:fp:"

	// FingerprintTTL bounds how long a fingerprint blocks re-ingestion.
	FingerprintTTL = 48 * time.Hour
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// FingerprintCache adapts the Redis fingerprint set to the dedup
// detector's cache interface.
type FingerprintCache struct{}

func (FingerprintCache) Has(fingerprint string) (bool, error) {
	return HasFingerprint(fingerprint)
}

func (FingerprintCache) Mark(fingerprint string) error {
	return MarkFingerprint(fingerprint)
}

func MarkFingerprint(fingerprint string) error {
	return Redis.Set(Ctx, fingerprintPrefix+fingerprint, "1", FingerprintTTL).Err()
}

func HasFingerprint(fingerprint string) (bool, error) {
	n, err := Redis.Exists(Ctx, fingerprintPrefix+fingerprint).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
