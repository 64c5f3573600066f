package service

import (
    "context"
    "errors"
    "strings"
    "unicode/utf8"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/pkg/logger"
)

// TweetService 推文创建/删除与转推状态机
type TweetService interface {
    // CreateTweet 原创或回复。正文非空白且 ≤280 码点；回复在同事务内递增父推 reply_count。
    CreateTweet(ctx context.Context, authorID, content string, replyToTweetID *string) (*TweetView, error)
    GetTweet(ctx context.Context, viewerID, tweetID string) (*TweetView, error)
    // DeleteTweet 仅作者可删。删除转推回落原推 retweet_count，删除回复回落父推 reply_count。
    DeleteTweet(ctx context.Context, actorID, tweetID string) error
    // CreateRetweet quoteContent 空白 ⇒ 纯转推（正文存空串，至多一条）；
    // 否则 ⇒ 引用转推（trim 后入库，可重复）。指向的目标若本身是纯转推，
    // 一律改指其原推（引用图保持一跳）。
    CreateRetweet(ctx context.Context, viewerID, originalTweetID string, quoteContent string) (*TweetView, error)
    // CancelRetweet 只取消纯转推；引用转推走 DeleteTweet
    CancelRetweet(ctx context.Context, viewerID, originalTweetID string) error
}

type tweetService struct {
    tweetRepo repository.TweetRepository
    userRepo  repository.UserRepository
    assembler *Assembler
}

func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository, assembler *Assembler) TweetService {
    return &tweetService{tweetRepo: tweetRepo, userRepo: userRepo, assembler: assembler}
}

// validateContent 非空白 + 码点数 ≤ 280
func validateContent(content string) error {
    if strings.TrimSpace(content) == "" {
        return ErrContentRequired
    }
    if utf8.RuneCountInString(content) > model.TweetMaxLength {
        return ErrContentTooLong
    }
    return nil
}

func (s *tweetService) CreateTweet(ctx context.Context, authorID, content string, replyToTweetID *string) (*TweetView, error) {
    if err := validateContent(content); err != nil {
        return nil, err
    }
    author, err := findUser(ctx, s.userRepo, authorID)
    if err != nil {
        return nil, err
    }
    var tweet *model.Tweet
    if replyToTweetID != nil {
        if _, err := findTweet(ctx, s.tweetRepo, *replyToTweetID); err != nil {
            return nil, err
        }
        tweet = model.NewReply(uuid.New().String(), author.ID, content, *replyToTweetID)
    } else {
        tweet = model.NewTweet(uuid.New().String(), author.ID, content)
    }
    if err := s.tweetRepo.Create(ctx, tweet); err != nil {
        return nil, err
    }
    return s.projectOne(ctx, author.ID, tweet)
}

func (s *tweetService) GetTweet(ctx context.Context, viewerID, tweetID string) (*TweetView, error) {
    tweet, err := findTweet(ctx, s.tweetRepo, tweetID)
    if err != nil {
        return nil, err
    }
    return s.projectOne(ctx, viewerID, tweet)
}

func (s *tweetService) DeleteTweet(ctx context.Context, actorID, tweetID string) error {
    tweet, err := findTweet(ctx, s.tweetRepo, tweetID)
    if err != nil {
        return err
    }
    if tweet.AuthorID != actorID {
        return ErrNotTweetAuthor
    }
    drift, err := s.tweetRepo.Delete(ctx, tweet)
    if err != nil {
        return err
    }
    if drift {
        logger.Warn("counter clamped at zero while deleting tweet, counter drift detected",
            zap.String("tweet_id", tweetID))
    }
    return nil
}

func (s *tweetService) CreateRetweet(ctx context.Context, viewerID, originalTweetID string, quoteContent string) (*TweetView, error) {
    viewer, err := findUser(ctx, s.userRepo, viewerID)
    if err != nil {
        return nil, err
    }
    original, err := s.resolveRetweetTarget(ctx, originalTweetID)
    if err != nil {
        return nil, err
    }

    quote := strings.TrimSpace(quoteContent)
    var retweet *model.Tweet
    if quote == "" {
        retweet = model.NewPureRetweet(uuid.New().String(), viewer.ID, original.ID)
    } else {
        if utf8.RuneCountInString(quote) > model.TweetMaxLength {
            return nil, ErrContentTooLong
        }
        retweet = model.NewQuoteRetweet(uuid.New().String(), viewer.ID, quote, original.ID)
    }

    if err := s.tweetRepo.CreateRetweet(ctx, retweet); err != nil {
        if errors.Is(err, repository.ErrDuplicate) {
            return nil, ErrDuplicateRetweet
        }
        return nil, err
    }

    view, err := s.projectOne(ctx, viewer.ID, retweet)
    if err != nil {
        return nil, err
    }
    // 创建响应是发起者视角，两种转推都恒为 true；
    // 时间线上引用行的标记规则（恒 false）只约束装配器，不约束这里
    view.RetweetedByMe = true
    return view, nil
}

func (s *tweetService) CancelRetweet(ctx context.Context, viewerID, originalTweetID string) error {
    if _, err := findUser(ctx, s.userRepo, viewerID); err != nil {
        return err
    }
    if _, err := findTweet(ctx, s.tweetRepo, originalTweetID); err != nil {
        return err
    }
    drift, err := s.tweetRepo.CancelPureRetweet(ctx, viewerID, originalTweetID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return ErrRetweetNotFound
        }
        return err
    }
    if drift {
        logger.Warn("retweet_count clamped at zero on cancel, counter drift detected",
            zap.String("original_tweet_id", originalTweetID), zap.String("viewer_id", viewerID))
    }
    return nil
}

// resolveRetweetTarget 解析转推目标：目标是纯转推时沿 original_tweet_id 落到根原推，
// 保证引用图恰好一跳（原创/引用可以被直接指向，纯转推不行）。
func (s *tweetService) resolveRetweetTarget(ctx context.Context, tweetID string) (*model.Tweet, error) {
    target, err := findTweet(ctx, s.tweetRepo, tweetID)
    if err != nil {
        return nil, err
    }
    if target.RetweetType != model.RetweetTypePure {
        return target, nil
    }
    if target.OriginalTweetID == nil {
        // 数据不变量被破坏：纯转推必须有原推引用
        return nil, ErrTweetNotFound
    }
    return findTweet(ctx, s.tweetRepo, *target.OriginalTweetID)
}

func (s *tweetService) projectOne(ctx context.Context, viewerID string, tweet *model.Tweet) (*TweetView, error) {
    views, err := s.assembler.Assemble(ctx, viewerID, []*model.Tweet{tweet})
    if err != nil {
        return nil, err
    }
    return views[0], nil
}
