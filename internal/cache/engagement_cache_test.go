package cache

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*EngagementCache, *miniredis.Miniredis) {
    t.Helper()
    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    t.Cleanup(func() { _ = rdb.Close() })
    return NewEngagementCache(rdb, time.Minute), mr
}

func TestEngagementCache_RoundTrip(t *testing.T) {
    c, _ := setupCache(t)
    ctx := context.Background()

    _, hit, err := c.Get(ctx, "t1")
    require.NoError(t, err)
    assert.False(t, hit)

    want := &TweetStats{LikeCount: 5, RetweetCount: 2, BookmarkCount: 1}
    require.NoError(t, c.Set(ctx, "t1", want))

    got, hit, err := c.Get(ctx, "t1")
    require.NoError(t, err)
    require.True(t, hit)
    assert.Equal(t, want, got)

    // 其他键不受影响
    _, hit, err = c.Get(ctx, "t2")
    require.NoError(t, err)
    assert.False(t, hit)
}

func TestEngagementCache_Invalidate(t *testing.T) {
    c, _ := setupCache(t)
    ctx := context.Background()

    require.NoError(t, c.Set(ctx, "t1", &TweetStats{LikeCount: 1}))
    require.NoError(t, c.Invalidate(ctx, "t1"))

    _, hit, err := c.Get(ctx, "t1")
    require.NoError(t, err)
    assert.False(t, hit)

    // 空键失效是幂等的
    require.NoError(t, c.Invalidate(ctx, "t1"))
}

func TestEngagementCache_TTLExpiry(t *testing.T) {
    c, mr := setupCache(t)
    ctx := context.Background()

    require.NoError(t, c.Set(ctx, "t1", &TweetStats{LikeCount: 1}))
    mr.FastForward(2 * time.Minute)

    _, hit, err := c.Get(ctx, "t1")
    require.NoError(t, err)
    assert.False(t, hit)
}
