package service

import (
    "context"
    "time"

    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/pkg/logger"
)

// CounterReconciler 周期性用关系表 COUNT(*) 重算推文冗余计数，修复漂移。
// 冗余计数只是缓存，权威值永远是关系表行数；任何绕过事务的写路径造成的
// 偏差都由这里兜底修复，每次修复都会记一致性告警。
type CounterReconciler struct {
    db        *gorm.DB
    interval  time.Duration
    batchSize int
}

func NewCounterReconciler(db *gorm.DB, interval time.Duration, batchSize int) *CounterReconciler {
    if interval <= 0 {
        interval = time.Minute
    }
    if batchSize <= 0 {
        batchSize = 500
    }
    return &CounterReconciler{db: db, interval: interval, batchSize: batchSize}
}

// Start 启动后台轮询；返回停止函数。
func (r *CounterReconciler) Start() func(context.Context) error {
    stop := make(chan struct{})
    go r.loop(stop)
    return func(ctx context.Context) error { close(stop); return nil }
}

func (r *CounterReconciler) loop(stop <-chan struct{}) {
    ticker := time.NewTicker(r.interval)
    defer ticker.Stop()
    for {
        select {
        case <-stop:
            return
        case <-ticker.C:
            if _, err := r.ReconcileOnce(context.Background()); err != nil {
                logger.Error("counter reconcile pass failed", zap.Error(err))
            }
        }
    }
}

type counterRow struct {
    ID           string
    LikeCount    int
    RetweetCount int
    ReplyCount   int
    Likes        int64
    Retweets     int64
    Replies      int64
}

// ReconcileOnce 全量分批扫一遍推文表，返回修复的行数
func (r *CounterReconciler) ReconcileOnce(ctx context.Context) (int, error) {
    fixed := 0
    offset := 0
    for {
        var rows []counterRow
        err := r.db.WithContext(ctx).Raw(`
            SELECT t.id, t.like_count, t.retweet_count, t.reply_count,
                   (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.id) AS likes,
                   (SELECT COUNT(*) FROM tweets r WHERE r.original_tweet_id = t.id) AS retweets,
                   (SELECT COUNT(*) FROM tweets p WHERE p.reply_to_tweet_id = t.id) AS replies
            FROM tweets t
            ORDER BY t.id
            LIMIT ? OFFSET ?
        `, r.batchSize, offset).Scan(&rows).Error
        if err != nil {
            return fixed, err
        }
        if len(rows) == 0 {
            return fixed, nil
        }
        for _, row := range rows {
            if int64(row.LikeCount) == row.Likes &&
                int64(row.RetweetCount) == row.Retweets &&
                int64(row.ReplyCount) == row.Replies {
                continue
            }
            err := r.db.WithContext(ctx).Model(&model.Tweet{}).
                Where("id = ?", row.ID).
                UpdateColumns(map[string]any{
                    "like_count":    row.Likes,
                    "retweet_count": row.Retweets,
                    "reply_count":   row.Replies,
                }).Error
            if err != nil {
                return fixed, err
            }
            fixed++
            logger.Warn("healed counter drift",
                zap.String("tweet_id", row.ID),
                zap.Int("cached_like_count", row.LikeCount), zap.Int64("actual_likes", row.Likes),
                zap.Int("cached_retweet_count", row.RetweetCount), zap.Int64("actual_retweets", row.Retweets),
                zap.Int("cached_reply_count", row.ReplyCount), zap.Int64("actual_replies", row.Replies))
        }
        if len(rows) < r.batchSize {
            return fixed, nil
        }
        offset += r.batchSize
    }
}
