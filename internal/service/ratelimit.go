package service

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/traveldesk/travelbot/internal/redis"
)

const (
	rateLimitKeyPrefix = "ratelimit:chat:"
	rateLimitWindow    = 60 * time.Second
)

var rateLimitScript = goredis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    return 0
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

return 1
`)

// RateLimiter bounds how many updates one chat may produce per minute,
// using a redis sliding window. Redis trouble fails open: dropping chat
// events over a cache hiccup is worse than briefly not limiting.
type RateLimiter struct {
	client *redis.Client
	limit  int
	logger zerolog.Logger
}

func NewRateLimiter(client *redis.Client, limit int, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		logger: logger.With().Str("component", "ratelimit").Logger(),
	}
}

func (rl *RateLimiter) Allow(ctx context.Context, chatID int64) bool {
	if rl.limit <= 0 {
		return true
	}

	key := fmt.Sprintf("%s%d", rateLimitKeyPrefix, chatID)
	now := time.Now().Unix()

	allowed, err := rateLimitScript.Run(ctx, rl.client, []string{key},
		now, int64(rateLimitWindow.Seconds()), rl.limit).Int64()
	if err != nil {
		rl.logger.Warn().Err(err).Int64("chat_id", chatID).Msg("rate limit check failed, allowing")
		return true
	}
	return allowed == 1
}
