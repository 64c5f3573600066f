package model

import "time"

// Bookmark 书签关系。私有列表，不影响任何计数字段。
// 复合唯一键 idx_bookmark_pair = (user_id, tweet_id)
type Bookmark struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    UserID    string    `gorm:"type:varchar(36);index:idx_bookmark_user;index:idx_bookmark_pair,unique;not null"`
    TweetID   string    `gorm:"type:varchar(36);index:idx_bookmark_pair,unique;not null"`
    CreatedAt time.Time
}

func (Bookmark) TableName() string { return "bookmarks" }
