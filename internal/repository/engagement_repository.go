package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/microblog/internal/model"
)

// ToggleResult 一次开关操作的结果
type ToggleResult struct {
    Active bool // 翻转后是否处于激活态
    Drift  bool // 递减时计数已为 0，被钳位（一致性告警信号）
}

type EngagementRepository interface {
    // ToggleLike 翻转 (user, tweet) 点赞行，并在同一事务内原子增减 like_count。
    // 并发下的重复插入由唯一索引拒绝，按"已存在"改走删除路径。
    ToggleLike(ctx context.Context, userID, tweetID string) (ToggleResult, error)
    // ToggleBookmark 同 ToggleLike，但书签不维护任何计数
    ToggleBookmark(ctx context.Context, userID, tweetID string) (ToggleResult, error)
    // CountLikes / CountBookmarks 关系表实时 COUNT(*)，审计与校正用，不读缓存计数
    CountLikes(ctx context.Context, tweetID string) (int64, error)
    CountBookmarks(ctx context.Context, tweetID string) (int64, error)
    // ListLikedTargets 返回 userID 在给定推文集合中已点赞的推文 ID（单条批量查询）
    ListLikedTargets(ctx context.Context, userID string, tweetIDs []string) ([]string, error)
    ListBookmarkedTargets(ctx context.Context, userID string, tweetIDs []string) ([]string, error)
    // ListBookmarkedTweets 按书签时间倒序取 userID 收藏的推文
    ListBookmarkedTweets(ctx context.Context, userID string, offset, limit int) ([]*model.Tweet, error)
}

type engagementRepository struct {
    db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository { return &engagementRepository{db: db} }

func (r *engagementRepository) ToggleLike(ctx context.Context, userID, tweetID string) (ToggleResult, error) {
    var out ToggleResult
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&model.Like{})
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected > 0 {
            out.Active = false
            var err error
            out.Drift, err = decrClamped(tx, tweetID, "like_count")
            return err
        }
        // DO NOTHING 让并发撞唯一索引不产生语句错误（postgres 下语句错误
        // 会中止整个事务，后续补偿语句全部 25P02），冲突只体现为 RowsAffected=0
        like := &model.Like{ID: uuid.New().String(), UserID: userID, TweetID: tweetID}
        ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
        if ins.Error != nil {
            return ins.Error
        }
        if ins.RowsAffected == 0 {
            // 对方刚点完赞，本次按"已存在"转为取消
            if err := tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).
                Delete(&model.Like{}).Error; err != nil {
                return err
            }
            out.Active = false
            var dErr error
            out.Drift, dErr = decrClamped(tx, tweetID, "like_count")
            return dErr
        }
        out.Active = true
        return tx.Model(&model.Tweet{}).
            Where("id = ?", tweetID).
            UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
    })
    return out, err
}

func (r *engagementRepository) ToggleBookmark(ctx context.Context, userID, tweetID string) (ToggleResult, error) {
    var out ToggleResult
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&model.Bookmark{})
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected > 0 {
            out.Active = false
            return nil
        }
        bm := &model.Bookmark{ID: uuid.New().String(), UserID: userID, TweetID: tweetID}
        ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(bm)
        if ins.Error != nil {
            return ins.Error
        }
        if ins.RowsAffected == 0 {
            out.Active = false
            return tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).
                Delete(&model.Bookmark{}).Error
        }
        out.Active = true
        return nil
    })
    return out, err
}

func (r *engagementRepository) CountLikes(ctx context.Context, tweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Like{}).Where("tweet_id = ?", tweetID).Count(&cnt).Error
    return cnt, err
}

func (r *engagementRepository) CountBookmarks(ctx context.Context, tweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Bookmark{}).Where("tweet_id = ?", tweetID).Count(&cnt).Error
    return cnt, err
}

func (r *engagementRepository) ListLikedTargets(ctx context.Context, userID string, tweetIDs []string) ([]string, error) {
    if len(tweetIDs) == 0 {
        return nil, nil
    }
    var ids []string
    err := r.db.WithContext(ctx).Model(&model.Like{}).
        Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
        Pluck("tweet_id", &ids).Error
    return ids, err
}

func (r *engagementRepository) ListBookmarkedTargets(ctx context.Context, userID string, tweetIDs []string) ([]string, error) {
    if len(tweetIDs) == 0 {
        return nil, nil
    }
    var ids []string
    err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
        Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
        Pluck("tweet_id", &ids).Error
    return ids, err
}

func (r *engagementRepository) ListBookmarkedTweets(ctx context.Context, userID string, offset, limit int) ([]*model.Tweet, error) {
    var res []*model.Tweet
    err := r.db.WithContext(ctx).Model(&model.Tweet{}).
        Joins("JOIN bookmarks ON bookmarks.tweet_id = tweets.id").
        Where("bookmarks.user_id = ?", userID).
        Order("bookmarks.created_at DESC, tweets.id DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
