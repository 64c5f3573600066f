package api

import (
    "net/http"
    "strings"

    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/microblog/config"
    _ "github.com/d60-Lab/microblog/docs"
    "github.com/d60-Lab/microblog/internal/api/handler"
    "github.com/d60-Lab/microblog/pkg/response"
)

// 全局限流，超限直接 429
func rateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
    limiter := rate.NewLimiter(rate.Limit(rps), burst)
    return func(c *gin.Context) {
        if !limiter.Allow() {
            response.TooManyRequests(c, "rate limit exceeded")
            c.Abort()
            return
        }
        c.Next()
    }
}

// NewRouter 组装中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        // 空白内容在 required 之外单独拦一道
        _ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
            return strings.TrimSpace(fl.Field().String()) != ""
        })
    }

    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    if cfg.Telemetry.TracingEnabled {
        r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
    }
    if cfg.Server.RateLimit > 0 {
        r.Use(rateLimitMiddleware(cfg.Server.RateLimit, cfg.Server.RateBurst))
    }

    r.GET("/health", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    })
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    v1 := r.Group("/api/v1")
    {
        tweets := v1.Group("/tweets")
        {
            tweets.POST("", h.CreateTweet)
            tweets.GET("/:tweet_id", h.GetTweet)
            tweets.DELETE("/:tweet_id", h.DeleteTweet)
            tweets.POST("/:tweet_id/retweet", h.CreateRetweet)
            tweets.DELETE("/:tweet_id/retweet", h.CancelRetweet)
            tweets.POST("/:tweet_id/like", h.ToggleLike)
            tweets.POST("/:tweet_id/bookmark", h.ToggleBookmark)
            tweets.GET("/:tweet_id/engagements", h.GetEngagementCount)
            tweets.GET("/:tweet_id/stats", h.GetTweetStats)
        }

        v1.GET("/feed", h.GetFeed)
        v1.GET("/bookmarks", h.ListBookmarks)

        search := v1.Group("/search")
        {
            search.GET("", h.SearchAll)
            search.GET("/users/:username", h.SearchUser)
            search.GET("/bookmarks", h.SearchBookmarked)
        }

        relations := v1.Group("/relations")
        {
            relations.POST("/follow", h.Follow)
            relations.POST("/unfollow", h.Unfollow)
            relations.GET("/:user_id/following", h.ListFollowing)
            relations.GET("/:user_id/followers", h.ListFollowers)
            relations.GET("/:user_id/counts", h.CountRelations)
        }
    }

    return r
}
