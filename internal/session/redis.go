package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

const redisKeyPrefix = "helpbot:ctx:"

// redisProbeKey sits outside the session prefix so the startup probe can
// never be read back as some session's context.
const redisProbeKey = "helpbot:startup-probe"

// RedisStore keeps conversation context in Redis so it survives restarts
// and is shared across replicas. Redis serializes operations per key, which
// covers the torn-read requirement. Idle sessions expire through the TTL
// instead of a sweeper.
type RedisStore struct {
	storage *redis.Storage
	ttl     time.Duration
}

// NewRedisStore connects to Redis at the given URL. A zero ttl retains
// contexts forever.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	storage := redis.New(redis.Config{URL: url})
	// redis.New only fails lazily on an unreachable server, so probe once
	// up front.
	if err := storage.Set(redisProbeKey, []byte("ok"), time.Minute); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	if err := storage.Delete(redisProbeKey); err != nil {
		slog.Warn("failed to delete redis startup probe key", "error", err)
	}
	return &RedisStore{storage: storage, ttl: ttl}, nil
}

// Read returns the session's context, or DefaultContext when the session is
// unknown or Redis is unreachable. A read failure degrades silently: the
// caller still gets a usable passage for inference.
func (s *RedisStore) Read(sessionID string) string {
	data, err := s.storage.Get(redisKeyPrefix + sessionID)
	if err != nil {
		slog.Warn("failed to read session context from redis", "session_id", sessionID, "error", err)
		return DefaultContext
	}
	if len(data) == 0 {
		return DefaultContext
	}
	return string(data)
}

// Update overwrites the session's context with the matched pair. Failures
// are logged and swallowed; a lost context update never affects the
// already-chosen response.
func (s *RedisStore) Update(sessionID, question, answer string) {
	err := s.storage.Set(redisKeyPrefix+sessionID, []byte(contextString(question, answer)), s.ttl)
	if err != nil {
		slog.Warn("failed to store session context in redis", "session_id", sessionID, "error", err)
	}
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.storage.Close()
}
