package auth

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestRedisTokenStore(t *testing.T) {
    mr := miniredis.RunT(t)
    client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    store := NewRedisTokenStore(client)
    ctx := context.Background()

    revoked, err := store.IsRevoked(ctx, "jti-1")
    require.NoError(t, err)
    assert.False(t, revoked)

    require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
    revoked, err = store.IsRevoked(ctx, "jti-1")
    require.NoError(t, err)
    assert.True(t, revoked)

    // TTL 到期自动失效
    mr.FastForward(2 * time.Minute)
    revoked, err = store.IsRevoked(ctx, "jti-1")
    require.NoError(t, err)
    assert.False(t, revoked)
}

func TestRedisTokenStoreIgnoresExpiredToken(t *testing.T) {
    mr := miniredis.RunT(t)
    client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    store := NewRedisTokenStore(client)

    // 已过期 token 无需登记
    require.NoError(t, store.Revoke(context.Background(), "jti-old", -time.Minute))
    revoked, err := store.IsRevoked(context.Background(), "jti-old")
    require.NoError(t, err)
    assert.False(t, revoked)
}

func TestMemoryTokenStore(t *testing.T) {
    store := NewMemoryTokenStore()
    ctx := context.Background()

    require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
    revoked, err := store.IsRevoked(ctx, "jti-1")
    require.NoError(t, err)
    assert.True(t, revoked)

    require.NoError(t, store.Revoke(ctx, "jti-2", time.Millisecond))
    time.Sleep(5 * time.Millisecond)
    revoked, err = store.IsRevoked(ctx, "jti-2")
    require.NoError(t, err)
    assert.False(t, revoked)
}
