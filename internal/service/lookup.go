package service

import (
    "context"
    "errors"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// findUser / findTweet 把仓储层的 ErrNotFound 映射成领域错误
func findUser(ctx context.Context, repo repository.UserRepository, id string) (*model.User, error) {
    u, err := repo.FindByID(ctx, id)
    if errors.Is(err, repository.ErrNotFound) {
        return nil, ErrUserNotFound
    }
    return u, err
}

func findUserByUsername(ctx context.Context, repo repository.UserRepository, username string) (*model.User, error) {
    u, err := repo.FindByUsername(ctx, username)
    if errors.Is(err, repository.ErrNotFound) {
        return nil, ErrUserNotFound
    }
    return u, err
}

func findTweet(ctx context.Context, repo repository.TweetRepository, id string) (*model.Tweet, error) {
    t, err := repo.FindByID(ctx, id)
    if errors.Is(err, repository.ErrNotFound) {
        return nil, ErrTweetNotFound
    }
    return t, err
}
