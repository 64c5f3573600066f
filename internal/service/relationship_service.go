package service

import (
    "context"

    "github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService 关注关系
type RelationshipService interface {
    Follow(ctx context.Context, fromUserID, toUserID string) error
    Unfollow(ctx context.Context, fromUserID, toUserID string) error
    ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]string, error)
    ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]string, error)
    CountFollowing(ctx context.Context, userID string) (int64, error)
    CountFollowers(ctx context.Context, userID string) (int64, error)
}

type relationshipService struct {
    followRepo repository.FollowRepository
    userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
    return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, fromUserID, toUserID string) error {
    if fromUserID == toUserID {
        return ErrFollowSelf
    }
    if _, err := findUser(ctx, s.userRepo, fromUserID); err != nil {
        return err
    }
    if _, err := findUser(ctx, s.userRepo, toUserID); err != nil {
        return err
    }
    // 重复关注幂等（仓储层 ON CONFLICT DO NOTHING）
    return s.followRepo.Create(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Unfollow(ctx context.Context, fromUserID, toUserID string) error {
    return s.followRepo.Delete(ctx, fromUserID, toUserID)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]string, error) {
    if pageSize < 1 {
        pageSize = 10
    }
    items, err := s.followRepo.ListFollowings(ctx, userID, pageOffset(page, pageSize), pageSize)
    if err != nil {
        return nil, err
    }
    res := make([]string, len(items))
    for i, it := range items {
        res[i] = it.FollowingID
    }
    return res, nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]string, error) {
    if pageSize < 1 {
        pageSize = 10
    }
    items, err := s.followRepo.ListFollowers(ctx, userID, pageOffset(page, pageSize), pageSize)
    if err != nil {
        return nil, err
    }
    res := make([]string, len(items))
    for i, it := range items {
        res[i] = it.FollowerID
    }
    return res, nil
}

func (s *relationshipService) CountFollowing(ctx context.Context, userID string) (int64, error) {
    return s.followRepo.CountFollowings(ctx, userID)
}

func (s *relationshipService) CountFollowers(ctx context.Context, userID string) (int64, error) {
    return s.followRepo.CountFollowers(ctx, userID)
}
