package auth

import (
    "context"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"
)

// TokenStore 记录已注销（logout）的 token，直到其自然过期
type TokenStore interface {
    Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
    IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedKeyPrefix = "miniblog:revoked:"

type redisTokenStore struct{ client *redis.Client }

// NewRedisTokenStore 基于 redis 的注销表；键带 TTL，过期自动清理
func NewRedisTokenStore(client *redis.Client) TokenStore {
    return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
    if ttl <= 0 {
        // token 已过期，无需记录
        return nil
    }
    return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
    n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
    if err != nil {
        return false, err
    }
    return n > 0, nil
}

type memoryTokenStore struct {
    mu      sync.Mutex
    expires map[string]time.Time
}

// NewMemoryTokenStore 进程内注销表；未配置 redis 时的单机兜底
func NewMemoryTokenStore() TokenStore {
    return &memoryTokenStore{expires: make(map[string]time.Time)}
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
    if ttl <= 0 {
        return nil
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    s.expires[tokenID] = time.Now().Add(ttl)
    return nil
}

func (s *memoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    exp, ok := s.expires[tokenID]
    if !ok {
        return false, nil
    }
    if time.Now().After(exp) {
        delete(s.expires, tokenID)
        return false, nil
    }
    return true, nil
}
