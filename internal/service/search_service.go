package service

import (
    "context"
    "strings"
    "time"

    "github.com/d60-Lab/microblog/internal/repository"
)

// SearchQuery 检索条件。Since/Until 为日历日期（当天零点），
// 展开为 [since 00:00:00, until 23:59:59] 的闭区间。
type SearchQuery struct {
    Keyword string
    Since   *time.Time
    Until   *time.Time
}

// valid 关键字与时间范围至少要有一个，无约束的全表检索直接拒绝
func (q SearchQuery) valid() bool {
    return strings.TrimSpace(q.Keyword) != "" || q.Since != nil || q.Until != nil
}

// SearchService 推文检索：全站 / 指定用户 / 我的书签 三种范围
type SearchService interface {
    SearchAll(ctx context.Context, viewerID string, query SearchQuery) ([]*TweetView, error)
    SearchUser(ctx context.Context, viewerID, targetUsername string, query SearchQuery) ([]*TweetView, error)
    SearchBookmarked(ctx context.Context, viewerID string, query SearchQuery) ([]*TweetView, error)
}

type searchService struct {
    tweetRepo repository.TweetRepository
    userRepo  repository.UserRepository
    assembler *Assembler
}

func NewSearchService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository, assembler *Assembler) SearchService {
    return &searchService{tweetRepo: tweetRepo, userRepo: userRepo, assembler: assembler}
}

func (s *searchService) SearchAll(ctx context.Context, viewerID string, query SearchQuery) ([]*TweetView, error) {
    return s.search(ctx, viewerID, query, repository.TweetSearchFilter{})
}

func (s *searchService) SearchUser(ctx context.Context, viewerID, targetUsername string, query SearchQuery) ([]*TweetView, error) {
    target, err := findUserByUsername(ctx, s.userRepo, targetUsername)
    if err != nil {
        return nil, err
    }
    return s.search(ctx, viewerID, query, repository.TweetSearchFilter{AuthorID: target.ID})
}

func (s *searchService) SearchBookmarked(ctx context.Context, viewerID string, query SearchQuery) ([]*TweetView, error) {
    return s.search(ctx, viewerID, query, repository.TweetSearchFilter{BookmarkedBy: viewerID})
}

func (s *searchService) search(ctx context.Context, viewerID string, query SearchQuery, filter repository.TweetSearchFilter) ([]*TweetView, error) {
    if !query.valid() {
        return nil, ErrEmptySearch
    }
    if _, err := findUser(ctx, s.userRepo, viewerID); err != nil {
        return nil, err
    }
    filter.Keyword = strings.TrimSpace(query.Keyword)
    if query.Since != nil {
        since := startOfDay(*query.Since)
        filter.Since = &since
    }
    if query.Until != nil {
        until := endOfDay(*query.Until)
        filter.Until = &until
    }
    tweets, err := s.tweetRepo.Search(ctx, filter)
    if err != nil {
        return nil, err
    }
    return s.assembler.Assemble(ctx, viewerID, tweets)
}

func startOfDay(d time.Time) time.Time {
    return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// endOfDay 含当天 23:59:59
func endOfDay(d time.Time) time.Time {
    return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}
