package releasecache

import (
	"time"
	"github.com/KirkDiggler/osrs-random/internal/errors"
)

const (
	errRepoEmpty    = "repo cannot be empty"
	errReleaseNil   = "release cannot be nil"
	errTTLNegative  = "ttl cannot be negative"
	errEntryMissing = "no cached release"
	errEntryExpired = "cached release has expired"
)

func validateGet(input GetInput) error {
	if input.Repo == "" {
		return errors.InvalidArgument(errRepoEmpty)
	}
	return nil
}

func validatePut(input PutInput) error {
	vb := errors.NewValidationBuilder()
	if input.Repo == "" {
		vb.Field("Repo", errRepoEmpty)
	}
	if input.Release == nil {
		vb.Field("Release", errReleaseNil)
	}
	if input.TTL < 0 {
		vb.Field("TTL", errTTLNegative)
	}
	return vb.Build()
}

func newEntry(input PutInput, now time.Time) *CachedRelease {
	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &CachedRelease{
		Repo:      input.Repo,
		Release:   *input.Release,
		FetchedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func expired(entry *CachedRelease, now time.Time) bool {
	return !now.Before(entry.ExpiresAt)
}
