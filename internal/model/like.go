package model

import "time"

// Like 点赞关系。行的存在与否即为开关状态，行本身从不更新。
// 复合唯一键 idx_like_pair = (user_id, tweet_id)，并发重复插入由它兜底。
type Like struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    UserID    string    `gorm:"type:varchar(36);index:idx_like_pair,unique;not null"`
    TweetID   string    `gorm:"type:varchar(36);index:idx_like_tweet;index:idx_like_pair,unique;not null"`
    CreatedAt time.Time
}

func (Like) TableName() string { return "likes" }
