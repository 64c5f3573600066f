package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/model"
)

func TestGetFeed_UnionOfSelfAndFollowings(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    me := env.seedUser(t, "me")
    followed := env.seedUser(t, "followed")
    stranger := env.seedUser(t, "stranger")
    require.NoError(t, env.relSvc.Follow(ctx, me.ID, followed.ID))

    mine := env.seedTweet(t, me.ID, "mine")
    theirs := env.seedTweet(t, followed.ID, "theirs")
    env.seedTweet(t, stranger.ID, "invisible")

    views, err := env.tlSvc.GetFeed(ctx, me.ID, 1)
    require.NoError(t, err)
    require.Len(t, views, 2)

    ids := []string{views[0].TweetID, views[1].TweetID}
    assert.Contains(t, ids, mine.ID)
    assert.Contains(t, ids, theirs.ID)
}

func TestGetFeed_NewestFirstAndPaged(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    me := env.seedUser(t, "me")

    // 拉开创建时间，保证排序确定
    base := time.Now().Add(-time.Hour)
    for i := 0; i < 25; i++ {
        tw := model.NewTweet(newID(), me.ID, "t")
        tw.CreatedAt = base.Add(time.Duration(i) * time.Minute)
        require.NoError(t, env.db.Create(tw).Error)
    }

    page1, err := env.tlSvc.GetFeed(ctx, me.ID, 1)
    require.NoError(t, err)
    require.Len(t, page1, FeedPageSize)
    for i := 1; i < len(page1); i++ {
        assert.False(t, page1[i].CreatedAt.After(page1[i-1].CreatedAt))
    }

    page2, err := env.tlSvc.GetFeed(ctx, me.ID, 2)
    require.NoError(t, err)
    assert.Len(t, page2, 5)

    // 页间不重叠
    seen := make(map[string]bool)
    for _, v := range page1 {
        seen[v.TweetID] = true
    }
    for _, v := range page2 {
        assert.False(t, seen[v.TweetID])
    }
}

// 场景：5 条候选，观察者只对其中 2 条点过赞，标记必须逐条正确
func TestAssemble_BatchFlags(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")
    require.NoError(t, env.relSvc.Follow(ctx, me.ID, author.ID))

    tweets := env.seedTweets(t, author.ID, 5)
    _, err := env.engSvc.ToggleLike(ctx, me.ID, tweets[1].ID)
    require.NoError(t, err)
    _, err = env.engSvc.ToggleLike(ctx, me.ID, tweets[3].ID)
    require.NoError(t, err)
    _, err = env.engSvc.ToggleBookmark(ctx, me.ID, tweets[3].ID)
    require.NoError(t, err)

    views, err := env.tlSvc.GetFeed(ctx, me.ID, 1)
    require.NoError(t, err)
    require.Len(t, views, 5)

    byID := make(map[string]*TweetView, len(views))
    for _, v := range views {
        byID[v.TweetID] = v
    }
    assert.True(t, byID[tweets[1].ID].LikedByMe)
    assert.True(t, byID[tweets[3].ID].LikedByMe)
    assert.True(t, byID[tweets[3].ID].BookmarkedByMe)
    assert.False(t, byID[tweets[0].ID].LikedByMe)
    assert.False(t, byID[tweets[2].ID].LikedByMe)
    assert.False(t, byID[tweets[4].ID].LikedByMe)
}

// 纯转推行展示原推的计数与标记，且对原作者也显示"已被我转推"的归属关系
func TestAssemble_PureRetweetShowsOriginalCounters(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    booster := env.seedUser(t, "booster")
    me := env.seedUser(t, "me")
    require.NoError(t, env.relSvc.Follow(ctx, me.ID, booster.ID))

    original := env.seedTweet(t, author.ID, "popular")
    for i := 0; i < 5; i++ {
        u := env.seedUser(t, "fan"+string(rune('a'+i)))
        _, err := env.engSvc.ToggleLike(ctx, u.ID, original.ID)
        require.NoError(t, err)
    }
    _, err := env.tweetSvc.CreateRetweet(ctx, booster.ID, original.ID, "")
    require.NoError(t, err)

    // 我自己也点过赞并转推过原推
    _, err = env.engSvc.ToggleLike(ctx, me.ID, original.ID)
    require.NoError(t, err)
    _, err = env.tweetSvc.CreateRetweet(ctx, me.ID, original.ID, "")
    require.NoError(t, err)

    views, err := env.tlSvc.GetFeed(ctx, me.ID, 1)
    require.NoError(t, err)

    var boosted *TweetView
    for _, v := range views {
        if v.Type == model.RetweetTypePure && v.AuthorID == booster.ID {
            boosted = v
        }
    }
    require.NotNil(t, boosted)
    // 计数取原推
    assert.Equal(t, 6, boosted.LikeCount)
    assert.Equal(t, 2, boosted.RetweetCount)
    // 标记归属原推：我赞过/转过原推 ⇒ 别人的转推行也为 true
    assert.True(t, boosted.LikedByMe)
    assert.True(t, boosted.RetweetedByMe)
}

// 引用转推是独立作品：计数是自己的，永不显示"已被我转推"
func TestAssemble_QuoteNeverRetweetedByMe(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")

    original := env.seedTweet(t, author.ID, "original")
    quote, err := env.tweetSvc.CreateRetweet(ctx, me.ID, original.ID, "my take")
    require.NoError(t, err)

    view, err := env.tweetSvc.GetTweet(ctx, me.ID, quote.TweetID)
    require.NoError(t, err)
    assert.False(t, view.RetweetedByMe)
    assert.Equal(t, 0, view.LikeCount)
    assert.Equal(t, "nick-me", view.Nickname)
}

func TestListBookmarks_OrderedByBookmarkTime(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")
    tweets := env.seedTweets(t, author.ID, 3)

    // 收藏顺序与发推顺序无关
    for _, i := range []int{1, 0, 2} {
        _, err := env.engSvc.ToggleBookmark(ctx, me.ID, tweets[i].ID)
        require.NoError(t, err)
        time.Sleep(5 * time.Millisecond)
    }

    views, err := env.tlSvc.ListBookmarks(ctx, me.ID, 1)
    require.NoError(t, err)
    require.Len(t, views, 3)
    assert.Equal(t, tweets[2].ID, views[0].TweetID)
    assert.Equal(t, tweets[0].ID, views[1].TweetID)
    assert.Equal(t, tweets[1].ID, views[2].TweetID)
    for _, v := range views {
        assert.True(t, v.BookmarkedByMe)
    }
}

func TestGetFeed_UnknownViewer(t *testing.T) {
    env := setupEnv(t)
    _, err := env.tlSvc.GetFeed(context.Background(), "ghost", 1)
    assert.ErrorIs(t, err, ErrUserNotFound)
}
