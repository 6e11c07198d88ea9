package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces limiter keys in a shared Redis
const KeyPrefix = "ratelimit:"

// incrWindow increments the counter and starts its expiry on the first hit,
// atomically, so a crash between the two calls cannot leave a counter without TTL.
var incrWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Redis keeps windows in Redis so every server instance shares the counts.
// Window timing follows the Redis server clock; the now argument of Allow is ignored.
type Redis struct {
	client redis.UniversalClient
	window time.Duration
}

// NewRedis creates a Redis-backed limiter
func NewRedis(client redis.UniversalClient, windowLength time.Duration) *Redis {
	return &Redis{
		client: client,
		window: windowLength,
	}
}

// Allow implements Limiter
func (r *Redis) Allow(ctx context.Context, key string, max int, now time.Time) (bool, error) {
	count, err := incrWindow.Run(ctx, r.client, []string{KeyPrefix + key}, r.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit %q: %w", key, err)
	}
	// The first request of a window is always allowed
	return count == 1 || count <= int64(max), nil
}
