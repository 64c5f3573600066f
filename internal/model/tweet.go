package model

import "time"

// RetweetType 推文形态：原创 / 纯转推 / 引用转推
type RetweetType string

const (
    RetweetTypeOriginal RetweetType = "ORIGINAL"
    RetweetTypePure     RetweetType = "PURE_RETWEET"
    RetweetTypeQuote    RetweetType = "QUOTE_RETWEET"
)

// TweetMaxLength 推文长度上限（码点数）
const TweetMaxLength = 280

// Tweet 推文主体
// 约束：retweet_type = ORIGINAL ⇔ original_tweet_id 为空；
// 同一 (author, original) 的纯转推至多一条，由部分唯一索引
// idx_tweet_pure_pair 兜底（引用转推不受限，故不能用普通复合唯一索引）；
// like_count / retweet_count / reply_count 是关系表计数的冗余缓存，
// 只允许通过原子增量语句修改（count = count ± 1），禁止读-改-写。
type Tweet struct {
    ID              string      `gorm:"primaryKey;type:varchar(36)"`
    AuthorID        string      `gorm:"type:varchar(36);index:idx_tweet_author;index:idx_tweet_pure_pair,unique,where:retweet_type = 'PURE_RETWEET';not null"`
    Content         string      `gorm:"type:varchar(280);not null"`
    LikeCount       int         `gorm:"not null;default:0"`
    RetweetCount    int         `gorm:"not null;default:0"`
    ReplyCount      int         `gorm:"not null;default:0"`
    RetweetType     RetweetType `gorm:"type:varchar(16);index:idx_tweet_rt_target;not null;default:ORIGINAL"`
    OriginalTweetID *string     `gorm:"type:varchar(36);index:idx_tweet_rt_target;index:idx_tweet_original;index:idx_tweet_pure_pair,unique,where:retweet_type = 'PURE_RETWEET'"`
    ReplyToTweetID  *string     `gorm:"type:varchar(36);index:idx_tweet_reply_to"`
    CreatedAt       time.Time   `gorm:"index:idx_tweet_created"`
    UpdatedAt       time.Time
}

func (Tweet) TableName() string { return "tweets" }

// IsRetweet 是否为转推（纯转推或引用）
func (t *Tweet) IsRetweet() bool { return t.RetweetType != RetweetTypeOriginal }

// FlagTargetID 视角标记的归属推文：纯转推指向原推，其余指向自身
func (t *Tweet) FlagTargetID() string {
    if t.RetweetType == RetweetTypePure && t.OriginalTweetID != nil {
        return *t.OriginalTweetID
    }
    return t.ID
}

// NewTweet 原创推文工厂
func NewTweet(id, authorID, content string) *Tweet {
    return &Tweet{ID: id, AuthorID: authorID, Content: content, RetweetType: RetweetTypeOriginal}
}

// NewReply 回复推文工厂
func NewReply(id, authorID, content, replyToTweetID string) *Tweet {
    t := NewTweet(id, authorID, content)
    t.ReplyToTweetID = &replyToTweetID
    return t
}

// NewPureRetweet 纯转推工厂：无正文，指向原推
func NewPureRetweet(id, authorID, originalTweetID string) *Tweet {
    return &Tweet{ID: id, AuthorID: authorID, Content: "", RetweetType: RetweetTypePure, OriginalTweetID: &originalTweetID}
}

// NewQuoteRetweet 引用转推工厂：带评论正文，指向原推
func NewQuoteRetweet(id, authorID, content, originalTweetID string) *Tweet {
    return &Tweet{ID: id, AuthorID: authorID, Content: content, RetweetType: RetweetTypeQuote, OriginalTweetID: &originalTweetID}
}
