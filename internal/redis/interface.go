package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the release cache talks to. It is the
// full UniversalClient so either a single node or a cluster client fits.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when the key does not exist
const Nil = redis.Nil
