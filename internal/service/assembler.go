package service

import (
    "context"
    "time"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// TweetView 面向调用方的推文投影，带观察者相对标记
type TweetView struct {
    TweetID         string            `json:"tweet_id"`
    Type            model.RetweetType `json:"type"`
    OriginalTweetID *string           `json:"original_tweet_id,omitempty"`
    ReplyToTweetID  *string           `json:"reply_to_tweet_id,omitempty"`
    Content         string            `json:"content"`
    AuthorID        string            `json:"author_id"`
    Username        string            `json:"username"`
    Nickname        string            `json:"nickname"`
    LikeCount       int               `json:"like_count"`
    RetweetCount    int               `json:"retweet_count"`
    ReplyCount      int               `json:"reply_count"`
    CreatedAt       time.Time         `json:"created_at"`
    RetweetedByMe   bool              `json:"is_retweeted_by_me"`
    LikedByMe       bool              `json:"is_liked_by_me"`
    BookmarkedByMe  bool              `json:"is_bookmarked_by_me"`
}

// Assembler 把候选推文批量装配成带观察者标记的视图。
// 固定 4 次批量查询（纯转推集合、点赞集合、书签集合、原推+作者补全），
// 与候选条数无关；早期实现的逐条查询（N+1）不允许回归。
type Assembler struct {
    tweetRepo repository.TweetRepository
    engRepo   repository.EngagementRepository
    userRepo  repository.UserRepository
}

func NewAssembler(tweetRepo repository.TweetRepository, engRepo repository.EngagementRepository, userRepo repository.UserRepository) *Assembler {
    return &Assembler{tweetRepo: tweetRepo, engRepo: engRepo, userRepo: userRepo}
}

// Assemble 输出顺序与输入候选列表一致（排序由取数一侧负责）
func (a *Assembler) Assemble(ctx context.Context, viewerID string, tweets []*model.Tweet) ([]*TweetView, error) {
    if len(tweets) == 0 {
        return []*TweetView{}, nil
    }

    // 1. 所有候选的标记归属 ID：原创/引用指向自身，纯转推指向原推
    targetSet := make(map[string]struct{}, len(tweets))
    targets := make([]string, 0, len(tweets))
    for _, t := range tweets {
        id := t.FlagTargetID()
        if _, ok := targetSet[id]; !ok {
            targetSet[id] = struct{}{}
            targets = append(targets, id)
        }
    }

    // 2. 观察者在归属集合上的三类关系，各一次批量查询
    retweeted, err := a.tweetRepo.ListPureRetweetTargets(ctx, viewerID, targets)
    if err != nil {
        return nil, err
    }
    liked, err := a.engRepo.ListLikedTargets(ctx, viewerID, targets)
    if err != nil {
        return nil, err
    }
    bookmarked, err := a.engRepo.ListBookmarkedTargets(ctx, viewerID, targets)
    if err != nil {
        return nil, err
    }
    retweetedSet := toSet(retweeted)
    likedSet := toSet(liked)
    bookmarkedSet := toSet(bookmarked)

    // 3. 纯转推展示原推计数，批量补全被引用的原推
    originals, err := a.loadOriginals(ctx, tweets)
    if err != nil {
        return nil, err
    }

    // 4. 批量补全作者信息
    authors, err := a.loadAuthors(ctx, tweets)
    if err != nil {
        return nil, err
    }

    views := make([]*TweetView, 0, len(tweets))
    for _, t := range tweets {
        v := &TweetView{
            TweetID:         t.ID,
            Type:            t.RetweetType,
            OriginalTweetID: t.OriginalTweetID,
            ReplyToTweetID:  t.ReplyToTweetID,
            Content:         t.Content,
            AuthorID:        t.AuthorID,
            LikeCount:       t.LikeCount,
            RetweetCount:    t.RetweetCount,
            ReplyCount:      t.ReplyCount,
            CreatedAt:       t.CreatedAt,
        }
        if u, ok := authors[t.AuthorID]; ok {
            v.Username = u.Username
            v.Nickname = u.Nickname
        }
        // 纯转推没有独立互动面，计数一律取原推
        if t.RetweetType == model.RetweetTypePure && t.OriginalTweetID != nil {
            if orig, ok := originals[*t.OriginalTweetID]; ok {
                v.LikeCount = orig.LikeCount
                v.RetweetCount = orig.RetweetCount
                v.ReplyCount = orig.ReplyCount
            }
        }
        target := t.FlagTargetID()
        // 引用转推是"我写的"，不是"我转的"，无条件 false
        if t.RetweetType != model.RetweetTypeQuote {
            _, v.RetweetedByMe = retweetedSet[target]
        }
        _, v.LikedByMe = likedSet[target]
        _, v.BookmarkedByMe = bookmarkedSet[target]
        views = append(views, v)
    }
    return views, nil
}

func (a *Assembler) loadOriginals(ctx context.Context, tweets []*model.Tweet) (map[string]*model.Tweet, error) {
    need := make([]string, 0)
    seen := make(map[string]struct{})
    for _, t := range tweets {
        if t.RetweetType == model.RetweetTypePure && t.OriginalTweetID != nil {
            if _, ok := seen[*t.OriginalTweetID]; !ok {
                seen[*t.OriginalTweetID] = struct{}{}
                need = append(need, *t.OriginalTweetID)
            }
        }
    }
    originals := make(map[string]*model.Tweet, len(need))
    if len(need) == 0 {
        return originals, nil
    }
    rows, err := a.tweetRepo.FindByIDs(ctx, need)
    if err != nil {
        return nil, err
    }
    for _, t := range rows {
        originals[t.ID] = t
    }
    return originals, nil
}

func (a *Assembler) loadAuthors(ctx context.Context, tweets []*model.Tweet) (map[string]*model.User, error) {
    ids := make([]string, 0, len(tweets))
    seen := make(map[string]struct{}, len(tweets))
    for _, t := range tweets {
        if _, ok := seen[t.AuthorID]; !ok {
            seen[t.AuthorID] = struct{}{}
            ids = append(ids, t.AuthorID)
        }
    }
    rows, err := a.userRepo.FindByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    authors := make(map[string]*model.User, len(rows))
    for _, u := range rows {
        authors[u.ID] = u
    }
    return authors, nil
}

func toSet(ids []string) map[string]struct{} {
    s := make(map[string]struct{}, len(ids))
    for _, id := range ids {
        s[id] = struct{}{}
    }
    return s
}
