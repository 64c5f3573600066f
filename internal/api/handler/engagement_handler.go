package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

type toggleRequest struct {
    ViewerID string `json:"viewer_id" binding:"required"`
}

type toggleResponse struct {
    Active bool `json:"active"`
}

// ToggleLike 点赞开关
// @Summary 点赞/取消点赞
// @Description 同一用户重复调用在点赞和取消之间切换，active 表示切换后的状态
// @Tags 互动
// @Accept json
// @Produce json
// @Param tweet_id path string true "推文ID"
// @Param request body toggleRequest true "操作者"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
    var req toggleRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    active, err := h.engagementService.ToggleLike(c.Request.Context(), req.ViewerID, c.Param("tweet_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, toggleResponse{Active: active})
}

// ToggleBookmark 收藏开关
// @Summary 收藏/取消收藏
// @Tags 互动
// @Accept json
// @Produce json
// @Param tweet_id path string true "推文ID"
// @Param request body toggleRequest true "操作者"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/bookmark [post]
func (h *Handler) ToggleBookmark(c *gin.Context) {
    var req toggleRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    active, err := h.engagementService.ToggleBookmark(c.Request.Context(), req.ViewerID, c.Param("tweet_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, toggleResponse{Active: active})
}

// GetEngagementCount 互动计数
// @Summary 查询点赞或收藏数
// @Tags 互动
// @Param tweet_id path string true "推文ID"
// @Param kind query string true "like 或 bookmark"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/engagements [get]
func (h *Handler) GetEngagementCount(c *gin.Context) {
    var kind service.EngagementKind
    switch c.Query("kind") {
    case "like":
        kind = service.KindLike
    case "bookmark":
        kind = service.KindBookmark
    default:
        response.BadRequest(c, "kind 必须是 like 或 bookmark")
        return
    }
    count, err := h.engagementService.GetEngagementCount(c.Request.Context(), c.Param("tweet_id"), kind)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"count": count})
}

// GetTweetStats 聚合计数
// @Summary 推文聚合统计
// @Description 优先走缓存，未命中回源并回填
// @Tags 互动
// @Param tweet_id path string true "推文ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/stats [get]
func (h *Handler) GetTweetStats(c *gin.Context) {
    stats, err := h.engagementService.GetTweetStats(c.Request.Context(), c.Param("tweet_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, stats)
}
