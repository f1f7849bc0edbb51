package service

import (
	"context"
	"strings"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/traveldesk/travelbot/internal/config"
	"github.com/traveldesk/travelbot/internal/redis"
)

// AirportResolver maps free location text to a comma-separated IATA code
// list, or the NO_RESULT sentinel when nothing matches.
type AirportResolver interface {
	ResolveAirports(ctx context.Context, location string) (string, error)
}

// CachedResolver caches successful lookups in redis. Airport codes for a
// city do not change, so a long TTL is safe; NoResult is cached too so a
// chat hammering an unresolvable name does not hammer the model.
type CachedResolver struct {
	inner  AirportResolver
	redis  *redis.Client
	logger zerolog.Logger
}

func NewCachedResolver(inner AirportResolver, rdb *redis.Client, logger zerolog.Logger) *CachedResolver {
	return &CachedResolver{
		inner:  inner,
		redis:  rdb,
		logger: logger.With().Str("component", "airport_resolver").Logger(),
	}
}

func (r *CachedResolver) ResolveAirports(ctx context.Context, location string) (string, error) {
	key := redis.AirportKey(strings.ToLower(strings.TrimSpace(location)))

	cached, err := r.redis.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if err != goredis.Nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("airport cache read failed")
	}

	codes, err := r.inner.ResolveAirports(ctx, location)
	if err != nil {
		return "", err
	}

	if err := r.redis.Set(ctx, key, codes, config.AirportCacheTTL).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("airport cache write failed")
	}
	return codes, nil
}
