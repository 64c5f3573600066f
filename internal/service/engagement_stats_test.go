package service

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/repository"
)

// 带 Redis 的统计路径：首读回源并回填，写路径翻转后缓存失效
func TestGetTweetStats_CacheFillAndInvalidate(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()

    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    t.Cleanup(func() { _ = rdb.Close() })
    stats := cache.NewEngagementCache(rdb, time.Minute)

    engSvc := NewEngagementService(
        repository.NewEngagementRepository(env.db),
        repository.NewTweetRepository(env.db),
        repository.NewUserRepository(env.db),
        stats,
    )

    author := env.seedUser(t, "author")
    viewer := env.seedUser(t, "viewer")
    tweet := env.seedTweet(t, author.ID, "hello")

    _, err := engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)

    // 首读未命中，回源后回填
    got, err := engSvc.GetTweetStats(ctx, tweet.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 1, got.LikeCount)

    cached, hit, err := stats.Get(ctx, tweet.ID)
    require.NoError(t, err)
    require.True(t, hit)
    assert.EqualValues(t, 1, cached.LikeCount)

    // 再翻转一次：缓存被失效，下一次读不会吐过期值
    _, err = engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    _, hit, err = stats.Get(ctx, tweet.ID)
    require.NoError(t, err)
    assert.False(t, hit)

    got, err = engSvc.GetTweetStats(ctx, tweet.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 0, got.LikeCount)
}

// 缓存命中时不触碰数据库（直接回缓存值）
func TestGetTweetStats_ServedFromCache(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()

    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    t.Cleanup(func() { _ = rdb.Close() })
    stats := cache.NewEngagementCache(rdb, time.Minute)

    engSvc := NewEngagementService(
        repository.NewEngagementRepository(env.db),
        repository.NewTweetRepository(env.db),
        repository.NewUserRepository(env.db),
        stats,
    )

    author := env.seedUser(t, "author")
    tweet := env.seedTweet(t, author.ID, "hello")

    planted := &cache.TweetStats{LikeCount: 42, RetweetCount: 7, BookmarkCount: 3}
    require.NoError(t, stats.Set(ctx, tweet.ID, planted))

    got, err := engSvc.GetTweetStats(ctx, tweet.ID)
    require.NoError(t, err)
    assert.Equal(t, planted, got)
}
