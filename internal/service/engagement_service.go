package service

import (
    "context"

    "go.uber.org/zap"

    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/pkg/logger"
)

// EngagementKind 互动开关的种类
type EngagementKind string

const (
    KindLike     EngagementKind = "LIKE"
    KindBookmark EngagementKind = "BOOKMARK"
)

// EngagementService 点赞/书签开关与计数查询
type EngagementService interface {
    // ToggleLike 翻转点赞态，返回翻转后是否激活。点赞行与 like_count 增减同事务提交。
    ToggleLike(ctx context.Context, viewerID, tweetID string) (bool, error)
    // ToggleBookmark 翻转书签态。书签是私有列表，不动任何计数。
    ToggleBookmark(ctx context.Context, viewerID, tweetID string) (bool, error)
    // GetEngagementCount 关系表实时 COUNT(*)，用于审计/校正，绕过冗余计数
    GetEngagementCount(ctx context.Context, tweetID string, kind EngagementKind) (int64, error)
    // GetTweetStats 三项实时计数，带 Redis 旁路缓存（缓存故障降级回源，绝不吞错充零）
    GetTweetStats(ctx context.Context, tweetID string) (*cache.TweetStats, error)
}

type engagementService struct {
    engRepo   repository.EngagementRepository
    tweetRepo repository.TweetRepository
    userRepo  repository.UserRepository
    stats     *cache.EngagementCache // 可为 nil（无 Redis 部署）
}

func NewEngagementService(engRepo repository.EngagementRepository, tweetRepo repository.TweetRepository, userRepo repository.UserRepository, stats *cache.EngagementCache) EngagementService {
    return &engagementService{engRepo: engRepo, tweetRepo: tweetRepo, userRepo: userRepo, stats: stats}
}

func (s *engagementService) ToggleLike(ctx context.Context, viewerID, tweetID string) (bool, error) {
    if err := s.checkRefs(ctx, viewerID, tweetID); err != nil {
        return false, err
    }
    res, err := s.engRepo.ToggleLike(ctx, viewerID, tweetID)
    if err != nil {
        return false, err
    }
    if res.Drift {
        // 钳位兜住了负计数，说明某条写路径绕过了事务，交给校正任务修复
        logger.Warn("like_count clamped at zero, counter drift detected",
            zap.String("tweet_id", tweetID), zap.String("viewer_id", viewerID))
    }
    s.invalidateStats(ctx, tweetID)
    return res.Active, nil
}

func (s *engagementService) ToggleBookmark(ctx context.Context, viewerID, tweetID string) (bool, error) {
    if err := s.checkRefs(ctx, viewerID, tweetID); err != nil {
        return false, err
    }
    res, err := s.engRepo.ToggleBookmark(ctx, viewerID, tweetID)
    if err != nil {
        return false, err
    }
    return res.Active, nil
}

func (s *engagementService) GetEngagementCount(ctx context.Context, tweetID string, kind EngagementKind) (int64, error) {
    if _, err := findTweet(ctx, s.tweetRepo, tweetID); err != nil {
        return 0, err
    }
    if kind == KindBookmark {
        return s.engRepo.CountBookmarks(ctx, tweetID)
    }
    return s.engRepo.CountLikes(ctx, tweetID)
}

func (s *engagementService) GetTweetStats(ctx context.Context, tweetID string) (*cache.TweetStats, error) {
    if _, err := findTweet(ctx, s.tweetRepo, tweetID); err != nil {
        return nil, err
    }
    if s.stats != nil {
        st, ok, err := s.stats.Get(ctx, tweetID)
        if err != nil {
            logger.Warn("stats cache read failed, falling back to store",
                zap.String("tweet_id", tweetID), zap.Error(err))
        }
        if ok {
            return st, nil
        }
    }
    likes, err := s.engRepo.CountLikes(ctx, tweetID)
    if err != nil {
        return nil, err
    }
    retweets, err := s.tweetRepo.CountRetweets(ctx, tweetID)
    if err != nil {
        return nil, err
    }
    bookmarks, err := s.engRepo.CountBookmarks(ctx, tweetID)
    if err != nil {
        return nil, err
    }
    st := &cache.TweetStats{LikeCount: likes, RetweetCount: retweets, BookmarkCount: bookmarks}
    if s.stats != nil {
        if err := s.stats.Set(ctx, tweetID, st); err != nil {
            logger.Warn("stats cache write failed", zap.String("tweet_id", tweetID), zap.Error(err))
        }
    }
    return st, nil
}

func (s *engagementService) invalidateStats(ctx context.Context, tweetID string) {
    if s.stats == nil {
        return
    }
    if err := s.stats.Invalidate(ctx, tweetID); err != nil {
        logger.Warn("stats cache invalidate failed", zap.String("tweet_id", tweetID), zap.Error(err))
    }
}

// checkRefs 入参引用校验：user / tweet 必须存在
func (s *engagementService) checkRefs(ctx context.Context, viewerID, tweetID string) error {
    if _, err := findUser(ctx, s.userRepo, viewerID); err != nil {
        return err
    }
    if _, err := findTweet(ctx, s.tweetRepo, tweetID); err != nil {
        return err
    }
    return nil
}
