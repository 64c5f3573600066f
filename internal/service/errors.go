package service

import "errors"

// 错误分四类：不存在 / 重复 / 无权限 / 参数非法。
// handler 层据此映射 404 / 409 / 403 / 400，核心层从不把错误吞成默认值。
var (
    ErrUserNotFound    = errors.New("user not found")
    ErrTweetNotFound   = errors.New("tweet not found")
    ErrRetweetNotFound = errors.New("pure retweet not found")

    ErrDuplicateRetweet = errors.New("already pure-retweeted this tweet")

    ErrNotTweetAuthor = errors.New("not the tweet author")

    ErrFollowSelf      = errors.New("cannot follow self")
    ErrContentRequired = errors.New("tweet content must not be blank")
    ErrContentTooLong  = errors.New("tweet content exceeds length limit")
    ErrEmptySearch     = errors.New("search requires a keyword or a date range")
)

// IsNotFound / IsDuplicate / IsUnauthorized / IsInvalidArgument 供调用方归类
func IsNotFound(err error) bool {
    return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrTweetNotFound) || errors.Is(err, ErrRetweetNotFound)
}

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicateRetweet) }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrNotTweetAuthor) }

func IsInvalidArgument(err error) bool {
    return errors.Is(err, ErrFollowSelf) || errors.Is(err, ErrContentRequired) ||
        errors.Is(err, ErrContentTooLong) || errors.Is(err, ErrEmptySearch)
}
