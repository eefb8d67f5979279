package releasecache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/osrs-random/internal/redis"
)

// Key pattern: release_cache:{owner/name}
const keyPrefix = "release_cache:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a release cache backed by Redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get reads the cached release for a repository
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	key := buildKey(input.Repo)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound(errEntryMissing)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read release from Redis")
	}

	var entry CachedRelease
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// a corrupt entry is as good as a miss
		slog.Warn("Discarding unreadable release cache entry", "key", key, "error", err)
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.NotFound(errEntryMissing)
	}

	// entries carry their own expiry alongside the Redis TTL
	if expired(&entry, r.clock.Now()) {
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.NotFound(errEntryExpired)
	}

	return &GetOutput{Entry: &entry}, nil
}

// Put stores a release with the requested TTL
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	entry := newEntry(input, now)

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal release")
	}

	if err := r.client.Set(ctx, buildKey(input.Repo), data, entry.ExpiresAt.Sub(now)).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store release in Redis")
	}

	return &PutOutput{Entry: entry}, nil
}

func buildKey(repo string) string {
	return keyPrefix + repo
}
