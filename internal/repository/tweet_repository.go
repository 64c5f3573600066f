package repository

import (
    "context"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
)

// TweetSearchFilter 推文检索条件。零值字段不参与过滤。
type TweetSearchFilter struct {
    Keyword      string
    Since        *time.Time
    Until        *time.Time
    AuthorID     string
    BookmarkedBy string
}

type TweetRepository interface {
    // Create 落地一条推文；带 reply_to 时在同一事务内递增父推文 reply_count
    Create(ctx context.Context, tweet *model.Tweet) error
    // CreateRetweet 事务内完成：纯转推唯一性校验、插入转推行、原推 retweet_count 原子 +1
    CreateRetweet(ctx context.Context, retweet *model.Tweet) error
    // CancelPureRetweet 事务内删除纯转推行并原子 -1（钳位到 0）。
    // drift=true 表示计数在减之前已经是 0，属于计数漂移。
    CancelPureRetweet(ctx context.Context, userID, originalTweetID string) (drift bool, err error)
    // Delete 删除推文及其点赞/书签行；转推回落原推计数，回复回落父推计数
    Delete(ctx context.Context, tweet *model.Tweet) (drift bool, err error)
    FindByID(ctx context.Context, id string) (*model.Tweet, error)
    FindByIDs(ctx context.Context, ids []string) ([]*model.Tweet, error)
    ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]*model.Tweet, error)
    // ListPureRetweetTargets 返回 userID 在给定原推集合中已纯转推的原推 ID（单条批量查询）
    ListPureRetweetTargets(ctx context.Context, userID string, originalTweetIDs []string) ([]string, error)
    FindPureRetweet(ctx context.Context, userID, originalTweetID string) (*model.Tweet, error)
    Search(ctx context.Context, filter TweetSearchFilter) ([]*model.Tweet, error)
    CountRetweets(ctx context.Context, originalTweetID string) (int64, error)
    CountReplies(ctx context.Context, tweetID string) (int64, error)
}

type tweetRepository struct {
    db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Create(tweet).Error; err != nil {
            return translate(err)
        }
        if tweet.ReplyToTweetID != nil {
            return tx.Model(&model.Tweet{}).
                Where("id = ?", *tweet.ReplyToTweetID).
                UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error
        }
        return nil
    })
}

func (r *tweetRepository) CreateRetweet(ctx context.Context, retweet *model.Tweet) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        // 纯转推唯一性：同一 (user, original) 至多一条。
        // 引用转推允许重复，不能用 (user, original, type) 复合唯一索引统一兜底，
        // 故在插入事务内做存在性检查。
        if retweet.RetweetType == model.RetweetTypePure {
            var cnt int64
            if err := tx.Model(&model.Tweet{}).
                Where("author_id = ? AND original_tweet_id = ? AND retweet_type = ?",
                    retweet.AuthorID, *retweet.OriginalTweetID, model.RetweetTypePure).
                Count(&cnt).Error; err != nil {
                return err
            }
            if cnt > 0 {
                return ErrDuplicate
            }
        }
        if err := tx.Create(retweet).Error; err != nil {
            return translate(err)
        }
        return tx.Model(&model.Tweet{}).
            Where("id = ?", *retweet.OriginalTweetID).
            UpdateColumn("retweet_count", gorm.Expr("retweet_count + ?", 1)).Error
    })
}

func (r *tweetRepository) CancelPureRetweet(ctx context.Context, userID, originalTweetID string) (bool, error) {
    var drift bool
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        res := tx.Where("author_id = ? AND original_tweet_id = ? AND retweet_type = ?",
            userID, originalTweetID, model.RetweetTypePure).
            Delete(&model.Tweet{})
        if res.Error != nil {
            return res.Error
        }
        if res.RowsAffected == 0 {
            return ErrNotFound
        }
        var err error
        drift, err = decrClamped(tx, originalTweetID, "retweet_count")
        return err
    })
    return drift, err
}

func (r *tweetRepository) Delete(ctx context.Context, tweet *model.Tweet) (bool, error) {
    var drift bool
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("id = ?", tweet.ID).Delete(&model.Tweet{}).Error; err != nil {
            return err
        }
        if err := tx.Where("tweet_id = ?", tweet.ID).Delete(&model.Like{}).Error; err != nil {
            return err
        }
        if err := tx.Where("tweet_id = ?", tweet.ID).Delete(&model.Bookmark{}).Error; err != nil {
            return err
        }
        if tweet.IsRetweet() && tweet.OriginalTweetID != nil {
            d, err := decrClamped(tx, *tweet.OriginalTweetID, "retweet_count")
            if err != nil {
                return err
            }
            drift = drift || d
        }
        if tweet.ReplyToTweetID != nil {
            d, err := decrClamped(tx, *tweet.ReplyToTweetID, "reply_count")
            if err != nil {
                return err
            }
            drift = drift || d
        }
        return nil
    })
    return drift, err
}

// decrClamped 原子减一并钳位到 0；返回是否触发钳位（计数漂移信号）
func decrClamped(tx *gorm.DB, tweetID, column string) (bool, error) {
    res := tx.Model(&model.Tweet{}).
        Where("id = ? AND "+column+" > 0", tweetID).
        UpdateColumn(column, gorm.Expr(column+" - ?", 1))
    if res.Error != nil {
        return false, res.Error
    }
    if res.RowsAffected == 0 {
        // 目标行存在但计数已是 0：钳位，留给调用方记一致性告警
        var cnt int64
        if err := tx.Model(&model.Tweet{}).Where("id = ?", tweetID).Count(&cnt).Error; err != nil {
            return false, err
        }
        return cnt > 0, nil
    }
    return false, nil
}

func (r *tweetRepository) FindByID(ctx context.Context, id string) (*model.Tweet, error) {
    var t model.Tweet
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
        return nil, translate(err)
    }
    return &t, nil
}

func (r *tweetRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Tweet, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    var res []*model.Tweet
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

func (r *tweetRepository) ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]*model.Tweet, error) {
    if len(authorIDs) == 0 {
        return nil, nil
    }
    var res []*model.Tweet
    err := r.db.WithContext(ctx).
        Where("author_id IN ?", authorIDs).
        Order("created_at DESC, id DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *tweetRepository) ListPureRetweetTargets(ctx context.Context, userID string, originalTweetIDs []string) ([]string, error) {
    if len(originalTweetIDs) == 0 {
        return nil, nil
    }
    var ids []string
    err := r.db.WithContext(ctx).Model(&model.Tweet{}).
        Where("author_id = ? AND retweet_type = ? AND original_tweet_id IN ?",
            userID, model.RetweetTypePure, originalTweetIDs).
        Pluck("original_tweet_id", &ids).Error
    return ids, err
}

func (r *tweetRepository) FindPureRetweet(ctx context.Context, userID, originalTweetID string) (*model.Tweet, error) {
    var t model.Tweet
    err := r.db.WithContext(ctx).
        Where("author_id = ? AND original_tweet_id = ? AND retweet_type = ?",
            userID, originalTweetID, model.RetweetTypePure).
        First(&t).Error
    if err != nil {
        return nil, translate(err)
    }
    return &t, nil
}

func (r *tweetRepository) Search(ctx context.Context, filter TweetSearchFilter) ([]*model.Tweet, error) {
    q := r.db.WithContext(ctx).Model(&model.Tweet{})
    if filter.BookmarkedBy != "" {
        q = q.Joins("JOIN bookmarks ON bookmarks.tweet_id = tweets.id").
            Where("bookmarks.user_id = ?", filter.BookmarkedBy)
    }
    if filter.AuthorID != "" {
        q = q.Where("tweets.author_id = ?", filter.AuthorID)
    }
    if filter.Keyword != "" {
        q = q.Where("tweets.content LIKE ?", "%"+filter.Keyword+"%")
    }
    if filter.Since != nil {
        q = q.Where("tweets.created_at >= ?", *filter.Since)
    }
    if filter.Until != nil {
        q = q.Where("tweets.created_at <= ?", *filter.Until)
    }
    var res []*model.Tweet
    err := q.Order("tweets.created_at DESC, tweets.id DESC").Find(&res).Error
    return res, err
}

func (r *tweetRepository) CountRetweets(ctx context.Context, originalTweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Tweet{}).
        Where("original_tweet_id = ?", originalTweetID).
        Count(&cnt).Error
    return cnt, err
}

func (r *tweetRepository) CountReplies(ctx context.Context, tweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Tweet{}).
        Where("reply_to_tweet_id = ?", tweetID).
        Count(&cnt).Error
    return cnt, err
}
