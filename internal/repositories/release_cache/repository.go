// Package releasecache remembers the last release lookup so repeated update
// checks do not hit the network
package releasecache

import (
	"context"
	"time"

	"github.com/KirkDiggler/osrs-random/internal/clients/github"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=releasecachemock github.com/KirkDiggler/osrs-random/internal/repositories/release_cache Repository

// DefaultTTL is used when PutInput.TTL is zero
const DefaultTTL = 6 * time.Hour

// CachedRelease is a release lookup result with its lifetime
type CachedRelease struct {
	Repo      string         `json:"repo"`
	Release   github.Release `json:"release"`
	FetchedAt time.Time      `json:"fetched_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// GetInput contains parameters for reading a cached release
type GetInput struct {
	Repo string
}

// GetOutput contains the cached release
type GetOutput struct {
	Entry *CachedRelease
}

// PutInput contains parameters for caching a release
type PutInput struct {
	Repo    string
	Release *github.Release
	TTL     time.Duration
}

// PutOutput contains the stored entry
type PutOutput struct {
	Entry *CachedRelease
}

// Repository stores the latest known release per repository. Get returns a
// NotFound error on a miss or once the entry has expired.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
