package service

import (
    "context"

    "github.com/d60-Lab/microblog/internal/repository"
)

// FeedPageSize 时间线/书签列表每页条数
const FeedPageSize = 20

// TimelineService 聚合时间线与书签列表（读路径）
type TimelineService interface {
    // GetFeed 候选集 = 我关注的人 ∪ 我自己 的推文，按时间倒序分页，
    // 关注者 ID 集合每次调用只算一次，取数是单条 author_id IN 查询
    GetFeed(ctx context.Context, viewerID string, page int) ([]*TweetView, error)
    // ListBookmarks 我的书签页，按收藏时间倒序
    ListBookmarks(ctx context.Context, viewerID string, page int) ([]*TweetView, error)
}

type timelineService struct {
    tweetRepo  repository.TweetRepository
    followRepo repository.FollowRepository
    engRepo    repository.EngagementRepository
    userRepo   repository.UserRepository
    assembler  *Assembler
}

func NewTimelineService(tweetRepo repository.TweetRepository, followRepo repository.FollowRepository, engRepo repository.EngagementRepository, userRepo repository.UserRepository, assembler *Assembler) TimelineService {
    return &timelineService{tweetRepo: tweetRepo, followRepo: followRepo, engRepo: engRepo, userRepo: userRepo, assembler: assembler}
}

func (s *timelineService) GetFeed(ctx context.Context, viewerID string, page int) ([]*TweetView, error) {
    viewer, err := findUser(ctx, s.userRepo, viewerID)
    if err != nil {
        return nil, err
    }
    authorIDs, err := s.followRepo.ListFollowingIDs(ctx, viewer.ID)
    if err != nil {
        return nil, err
    }
    // 自己的推文必须出现在自己的时间线里
    authorIDs = append(authorIDs, viewer.ID)

    offset := pageOffset(page, FeedPageSize)
    tweets, err := s.tweetRepo.ListByAuthors(ctx, authorIDs, offset, FeedPageSize)
    if err != nil {
        return nil, err
    }
    return s.assembler.Assemble(ctx, viewer.ID, tweets)
}

func (s *timelineService) ListBookmarks(ctx context.Context, viewerID string, page int) ([]*TweetView, error) {
    viewer, err := findUser(ctx, s.userRepo, viewerID)
    if err != nil {
        return nil, err
    }
    offset := pageOffset(page, FeedPageSize)
    tweets, err := s.engRepo.ListBookmarkedTweets(ctx, viewer.ID, offset, FeedPageSize)
    if err != nil {
        return nil, err
    }
    return s.assembler.Assemble(ctx, viewer.ID, tweets)
}

func pageOffset(page, pageSize int) int {
    if page < 1 {
        page = 1
    }
    return (page - 1) * pageSize
}
