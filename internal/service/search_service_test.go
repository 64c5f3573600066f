package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/model"
)

func TestSearch_RejectsEmptyQuery(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    me := env.seedUser(t, "me")

    _, err := env.searchSvc.SearchAll(ctx, me.ID, SearchQuery{})
    assert.ErrorIs(t, err, ErrEmptySearch)

    // 纯空白关键字等同没给
    _, err = env.searchSvc.SearchAll(ctx, me.ID, SearchQuery{Keyword: "   "})
    assert.ErrorIs(t, err, ErrEmptySearch)

    // 只给日期是合法的
    d := time.Now()
    _, err = env.searchSvc.SearchAll(ctx, me.ID, SearchQuery{Since: &d})
    assert.NoError(t, err)
}

func TestSearch_KeywordSubstring(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")
    env.seedTweet(t, author.ID, "golang is fun")
    env.seedTweet(t, author.ID, "the go gopher")
    env.seedTweet(t, author.ID, "unrelated")

    views, err := env.searchSvc.SearchAll(ctx, me.ID, SearchQuery{Keyword: "go"})
    require.NoError(t, err)
    assert.Len(t, views, 2)
}

func TestSearch_DateRangeIsInclusive(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")

    day := func(offset int, hour int) time.Time {
        return time.Date(2026, 3, 10+offset, hour, 0, 0, 0, time.UTC)
    }
    seed := func(content string, at time.Time) {
        tw := model.NewTweet(newID(), author.ID, content)
        tw.CreatedAt = at
        require.NoError(t, env.db.Create(tw).Error)
    }
    seed("before", day(-1, 23))
    seed("first-day early", day(0, 0))
    seed("last-day late", day(2, 23))
    seed("after", day(3, 1))

    since := day(0, 0)
    until := day(2, 0)
    views, err := env.searchSvc.SearchAll(ctx, me.ID, SearchQuery{Since: &since, Until: &until})
    require.NoError(t, err)
    require.Len(t, views, 2)
    // until 覆盖到当天 23:59:59
    contents := []string{views[0].Content, views[1].Content}
    assert.Contains(t, contents, "first-day early")
    assert.Contains(t, contents, "last-day late")
}

func TestSearchUser_ScopedToAuthor(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    alice := env.seedUser(t, "alice")
    bob := env.seedUser(t, "bob")
    me := env.seedUser(t, "me")
    env.seedTweet(t, alice.ID, "hello from alice")
    env.seedTweet(t, bob.ID, "hello from bob")

    views, err := env.searchSvc.SearchUser(ctx, me.ID, "alice", SearchQuery{Keyword: "hello"})
    require.NoError(t, err)
    require.Len(t, views, 1)
    assert.Equal(t, alice.ID, views[0].AuthorID)

    _, err = env.searchSvc.SearchUser(ctx, me.ID, "nobody", SearchQuery{Keyword: "hello"})
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchBookmarked_OnlyMyBookmarks(t *testing.T) {
    env := setupEnv(t)
    ctx := context.Background()
    author := env.seedUser(t, "author")
    me := env.seedUser(t, "me")
    other := env.seedUser(t, "other")
    kept := env.seedTweet(t, author.ID, "keep this one")
    env.seedTweet(t, author.ID, "keep that too")
    foreign := env.seedTweet(t, author.ID, "keep but not mine")

    _, err := env.engSvc.ToggleBookmark(ctx, me.ID, kept.ID)
    require.NoError(t, err)
    _, err = env.engSvc.ToggleBookmark(ctx, other.ID, foreign.ID)
    require.NoError(t, err)

    views, err := env.searchSvc.SearchBookmarked(ctx, me.ID, SearchQuery{Keyword: "keep"})
    require.NoError(t, err)
    require.Len(t, views, 1)
    assert.Equal(t, kept.ID, views[0].TweetID)
    assert.True(t, views[0].BookmarkedByMe)
}

func TestSearch_UnknownViewer(t *testing.T) {
    env := setupEnv(t)
    _, err := env.searchSvc.SearchAll(context.Background(), "ghost", SearchQuery{Keyword: "x"})
    assert.ErrorIs(t, err, ErrUserNotFound)
}
