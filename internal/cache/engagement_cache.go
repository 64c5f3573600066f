package cache

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"
)

// TweetStats 单条推文的实时互动计数快照
type TweetStats struct {
    LikeCount     int64 `json:"like_count"`
    RetweetCount  int64 `json:"retweet_count"`
    BookmarkCount int64 `json:"bookmark_count"`
}

// EngagementCache 推文互动计数的 Redis 旁路缓存。
// 缓存只是加速层：读失败按未命中处理，写失败忽略，权威数据永远在关系表。
type EngagementCache struct {
    rdb *redis.Client
    ttl time.Duration
}

func NewEngagementCache(rdb *redis.Client, ttl time.Duration) *EngagementCache {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &EngagementCache{rdb: rdb, ttl: ttl}
}

func statsKey(tweetID string) string { return fmt.Sprintf("tweet:stats:%s", tweetID) }

// Get 命中返回 (stats, true, nil)；未命中返回 (nil, false, nil)
func (c *EngagementCache) Get(ctx context.Context, tweetID string) (*TweetStats, bool, error) {
    data, err := c.rdb.Get(ctx, statsKey(tweetID)).Bytes()
    if err == redis.Nil {
        return nil, false, nil
    }
    if err != nil {
        return nil, false, err
    }
    var s TweetStats
    if err := json.Unmarshal(data, &s); err != nil {
        return nil, false, err
    }
    return &s, true, nil
}

func (c *EngagementCache) Set(ctx context.Context, tweetID string, s *TweetStats) error {
    payload, err := json.Marshal(s)
    if err != nil {
        return err
    }
    return c.rdb.Set(ctx, statsKey(tweetID), payload, c.ttl).Err()
}

// Invalidate 互动写路径翻转后调用，下一次读回源重建
func (c *EngagementCache) Invalidate(ctx context.Context, tweetID string) error {
    return c.rdb.Del(ctx, statsKey(tweetID)).Err()
}
