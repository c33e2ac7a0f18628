package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface shared by the character store and the
// reference catalog
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
