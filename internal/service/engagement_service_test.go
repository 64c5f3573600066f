package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/model"
)

func TestToggleLike_PairsOnOff(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    viewer := env.seedUser(t, "viewer")
    tweet := env.seedTweet(t, author.ID, "hello")

    // 第一次：点上，计数 +1
    active, err := env.engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    assert.True(t, active)
    assert.Equal(t, 1, env.reload(t, tweet.ID).LikeCount)

    // 第二次：取消，计数回落
    active, err = env.engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    assert.False(t, active)
    assert.Equal(t, 0, env.reload(t, tweet.ID).LikeCount)

    // 第三次：重新点上
    active, err = env.engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    assert.True(t, active)
    assert.Equal(t, 1, env.reload(t, tweet.ID).LikeCount)
}

func TestToggleLike_CountMatchesDistinctLikers(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    tweet := env.seedTweet(t, author.ID, "hello")

    for i := 0; i < 5; i++ {
        u := env.seedUser(t, "liker"+string(rune('a'+i)))
        _, err := env.engSvc.ToggleLike(ctx, u.ID, tweet.ID)
        require.NoError(t, err)
    }
    assert.Equal(t, 5, env.reload(t, tweet.ID).LikeCount)

    n, err := env.engSvc.GetEngagementCount(ctx, tweet.ID, KindLike)
    require.NoError(t, err)
    assert.EqualValues(t, 5, n)
}

func TestToggleBookmark_NoCounterOnTweet(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    viewer := env.seedUser(t, "viewer")
    tweet := env.seedTweet(t, author.ID, "hello")

    active, err := env.engSvc.ToggleBookmark(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    assert.True(t, active)

    // 书签不在推文行上冗余计数
    got := env.reload(t, tweet.ID)
    assert.Equal(t, 0, got.LikeCount)

    n, err := env.engSvc.GetEngagementCount(ctx, tweet.ID, KindBookmark)
    require.NoError(t, err)
    assert.EqualValues(t, 1, n)

    active, err = env.engSvc.ToggleBookmark(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    assert.False(t, active)

    n, err = env.engSvc.GetEngagementCount(ctx, tweet.ID, KindBookmark)
    require.NoError(t, err)
    assert.EqualValues(t, 0, n)
}

func TestToggleLike_MissingRefs(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    viewer := env.seedUser(t, "viewer")
    tweet := env.seedTweet(t, author.ID, "hello")

    _, err := env.engSvc.ToggleLike(ctx, viewer.ID, "no-such-tweet")
    assert.ErrorIs(t, err, ErrTweetNotFound)

    _, err = env.engSvc.ToggleLike(ctx, "no-such-user", tweet.ID)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleLike_IndependentPerUser(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    a := env.seedUser(t, "alice")
    b := env.seedUser(t, "bob")
    tweet := env.seedTweet(t, author.ID, "hello")

    _, err := env.engSvc.ToggleLike(ctx, a.ID, tweet.ID)
    require.NoError(t, err)
    _, err = env.engSvc.ToggleLike(ctx, b.ID, tweet.ID)
    require.NoError(t, err)
    assert.Equal(t, 2, env.reload(t, tweet.ID).LikeCount)

    // alice 取消不影响 bob 的点赞
    active, err := env.engSvc.ToggleLike(ctx, a.ID, tweet.ID)
    require.NoError(t, err)
    assert.False(t, active)
    assert.Equal(t, 1, env.reload(t, tweet.ID).LikeCount)

    var likes []model.Like
    require.NoError(t, env.db.Find(&likes).Error)
    require.Len(t, likes, 1)
    assert.Equal(t, b.ID, likes[0].UserID)
}

func TestGetTweetStats_LiveCountsWithoutCache(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    viewer := env.seedUser(t, "viewer")
    tweet := env.seedTweet(t, author.ID, "hello")

    _, err := env.engSvc.ToggleLike(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    _, err = env.engSvc.ToggleBookmark(ctx, viewer.ID, tweet.ID)
    require.NoError(t, err)
    _, err = env.tweetSvc.CreateRetweet(ctx, viewer.ID, tweet.ID, "")
    require.NoError(t, err)

    stats, err := env.engSvc.GetTweetStats(ctx, tweet.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 1, stats.LikeCount)
    assert.EqualValues(t, 1, stats.RetweetCount)
    assert.EqualValues(t, 1, stats.BookmarkCount)
}
