package main

import (
    "context"
    "fmt"
    "math"
    "math/rand"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/database"
    "github.com/d60-Lab/microblog/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
    if len(vs) == 0 { return 0 }
    xs := append([]time.Duration(nil), vs...)
    sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
    k := int(math.Ceil(p*float64(len(xs)))) - 1
    if k < 0 { k = 0 }
    if k >= len(xs) { k = len(xs)-1 }
    return xs[k]
}

func main() {
    cfg := must(config.Load())
    _ = logger.Init("warn")
    db := must(database.InitDB(cfg))

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    engRepo := repository.NewEngagementRepository(db)
    followRepo := repository.NewFollowRepository(db)
    assembler := service.NewAssembler(tweetRepo, engRepo, userRepo)
    engSvc := service.NewEngagementService(engRepo, tweetRepo, userRepo, nil)
    tlSvc := service.NewTimelineService(tweetRepo, followRepo, engRepo, userRepo, assembler)

    // params
    USERS := 1000             // total users
    FOLLOWS := 50             // followings per viewer
    TWEETS := 20000           // seeded tweets
    TOGGLES := 5000           // like toggles to measure
    FEEDS := 500              // feed reads to measure
    if s := os.Getenv("USERS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { USERS = v } }
    if s := os.Getenv("FOLLOWS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { FOLLOWS = v } }
    if s := os.Getenv("TWEETS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { TWEETS = v } }
    if s := os.Getenv("TOGGLES"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { TOGGLES = v } }
    if s := os.Getenv("FEEDS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { FEEDS = v } }

    // clean tables for a reproducible run (ok for local bench)
    _ = db.Exec("TRUNCATE TABLE likes, bookmarks, tweets, follows, users RESTART IDENTITY CASCADE").Error

    // seed users
    users := make([]model.User, USERS)
    for i := 0; i < USERS; i++ {
        id := uuid.New().String()
        users[i] = model.User{ID: id, LoginID: "u"+id[:8], Username: "u"+id[:8], Nickname: "bench", PasswordHash: "x"}
    }
    _ = db.CreateInBatches(&users, 1000).Error

    // seed follow graph: each user follows FOLLOWS random users
    for i := range users {
        for j := 0; j < FOLLOWS; j++ {
            target := users[rand.Intn(USERS)]
            if target.ID == users[i].ID { continue }
            _ = followRepo.Create(context.Background(), users[i].ID, target.ID)
        }
    }

    // seed tweets
    tweets := make([]*model.Tweet, TWEETS)
    for i := 0; i < TWEETS; i++ {
        author := users[rand.Intn(USERS)]
        tweets[i] = model.NewTweet(uuid.New().String(), author.ID, fmt.Sprintf("bench tweet %d", i))
    }
    _ = db.CreateInBatches(&tweets, 1000).Error

    // measure like toggles (each pair = on + off)
    togDurations := make([]time.Duration, 0, TOGGLES)
    for i := 0; i < TOGGLES; i++ {
        viewer := users[rand.Intn(USERS)]
        target := tweets[rand.Intn(TWEETS)]
        st := time.Now()
        if _, err := engSvc.ToggleLike(context.Background(), viewer.ID, target.ID); err != nil { panic(err) }
        togDurations = append(togDurations, time.Since(st))
    }

    // measure feed assembly (first page)
    feedDurations := make([]time.Duration, 0, FEEDS)
    var rows int
    for i := 0; i < FEEDS; i++ {
        viewer := users[rand.Intn(USERS)]
        st := time.Now()
        views, err := tlSvc.GetFeed(context.Background(), viewer.ID, 1)
        if err != nil { panic(err) }
        feedDurations = append(feedDurations, time.Since(st))
        rows += len(views)
    }

    fmt.Printf("USERS=%d FOLLOWS=%d TWEETS=%d TOGGLES=%d FEEDS=%d\n", USERS, FOLLOWS, TWEETS, TOGGLES, FEEDS)
    var togSum time.Duration
    for _, d := range togDurations { togSum += d }
    fmt.Printf("Like toggle latency: avg=%v p95=%v p99=%v\n", togSum/time.Duration(len(togDurations)), pct(togDurations, 0.95), pct(togDurations, 0.99))
    var feedSum time.Duration
    for _, d := range feedDurations { feedSum += d }
    fmt.Printf("Feed assembly (page=1): avg=%v p95=%v p99=%v avg_rows=%d\n", feedSum/time.Duration(len(feedDurations)), pct(feedDurations, 0.95), pct(feedDurations, 0.99), rows/len(feedDurations))
}
