package model

import "time"

// User 用户（注册/登录等 CRUD 由外围系统负责，这里只承载引用关系）
type User struct {
    ID           string    `gorm:"primaryKey;type:varchar(36)"`
    LoginID      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
    Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
    Nickname     string    `gorm:"type:varchar(64);not null"`
    PasswordHash string    `gorm:"type:varchar(128);not null"`
    CreatedAt    time.Time
    UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
