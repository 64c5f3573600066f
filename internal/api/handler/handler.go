package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

// Handler 聚合全部 HTTP 入口
type Handler struct {
    tweetService      service.TweetService
    engagementService service.EngagementService
    timelineService   service.TimelineService
    searchService     service.SearchService
    relService        service.RelationshipService
}

func New(
    tweetService service.TweetService,
    engagementService service.EngagementService,
    timelineService service.TimelineService,
    searchService service.SearchService,
    relService service.RelationshipService,
) *Handler {
    return &Handler{
        tweetService:      tweetService,
        engagementService: engagementService,
        timelineService:   timelineService,
        searchService:     searchService,
        relService:        relService,
    }
}

// writeError 领域错误 → HTTP 状态码：404 / 409 / 403 / 400 / 500
func writeError(c *gin.Context, err error) {
    switch {
    case service.IsNotFound(err):
        response.NotFound(c, err.Error())
    case service.IsDuplicate(err):
        response.Conflict(c, err.Error())
    case service.IsUnauthorized(err):
        response.Forbidden(c, err.Error())
    case service.IsInvalidArgument(err):
        response.BadRequest(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
