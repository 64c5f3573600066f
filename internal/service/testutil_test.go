package service

import (
    "fmt"
    "testing"

    "github.com/google/uuid"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// 全部服务共用的内存库夹具
type testEnv struct {
    db        *gorm.DB
    tweetSvc  TweetService
    engSvc    EngagementService
    tlSvc     TimelineService
    searchSvc SearchService
    relSvc    RelationshipService
}

func newID() string { return uuid.New().String() }

func setupEnv(t *testing.T) *testEnv {
    t.Helper()
    // TranslateError 必开，唯一键冲突要翻译成 gorm.ErrDuplicatedKey
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Tweet{}, &model.Follow{}, &model.Like{}, &model.Bookmark{},
    ))

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    engRepo := repository.NewEngagementRepository(db)
    followRepo := repository.NewFollowRepository(db)
    assembler := NewAssembler(tweetRepo, engRepo, userRepo)

    return &testEnv{
        db:        db,
        tweetSvc:  NewTweetService(tweetRepo, userRepo, assembler),
        engSvc:    NewEngagementService(engRepo, tweetRepo, userRepo, nil),
        tlSvc:     NewTimelineService(tweetRepo, followRepo, engRepo, userRepo, assembler),
        searchSvc: NewSearchService(tweetRepo, userRepo, assembler),
        relSvc:    NewRelationshipService(followRepo, userRepo),
    }
}

func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
    t.Helper()
    u := &model.User{
        ID:           uuid.New().String(),
        LoginID:      username,
        Username:     username,
        Nickname:     "nick-" + username,
        PasswordHash: "x",
    }
    require.NoError(t, e.db.Create(u).Error)
    return u
}

func (e *testEnv) seedTweet(t *testing.T, authorID, content string) *model.Tweet {
    t.Helper()
    tw := model.NewTweet(uuid.New().String(), authorID, content)
    require.NoError(t, e.db.Create(tw).Error)
    return tw
}

func (e *testEnv) seedTweets(t *testing.T, authorID string, n int) []*model.Tweet {
    t.Helper()
    out := make([]*model.Tweet, 0, n)
    for i := 0; i < n; i++ {
        out = append(out, e.seedTweet(t, authorID, fmt.Sprintf("tweet %d", i)))
    }
    return out
}

// reload 读回最新的计数快照
func (e *testEnv) reload(t *testing.T, tweetID string) *model.Tweet {
    t.Helper()
    var tw model.Tweet
    require.NoError(t, e.db.First(&tw, "id = ?", tweetID).Error)
    return &tw
}
