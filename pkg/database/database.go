package database

import (
    "fmt"
    "time"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构。
// TranslateError 开启后唯一约束冲突统一为 gorm.ErrDuplicatedKey，
// 互动开关的并发插入依赖这个判定。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "sqlite":
        dialector = sqlite.Open(cfg.Database.FilePath)
    case "postgres":
        dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
            cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
            cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode)
        dialector = postgres.Open(dsn)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }

    db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
    if err != nil {
        return nil, err
    }

    sqlDB, err := db.DB()
    if err != nil {
        return nil, err
    }
    sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
    sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
    sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

    if err := db.AutoMigrate(
        &model.User{},
        &model.Tweet{},
        &model.Follow{},
        &model.Like{},
        &model.Bookmark{},
    ); err != nil {
        return nil, err
    }
    return db, nil
}
