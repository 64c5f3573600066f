package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/pkg/response"
)

func pageQuery(c *gin.Context) int {
    page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
    if err != nil || page < 1 {
        page = 1
    }
    return page
}

// GetFeed 首页时间线
// @Summary 首页时间线
// @Description 自己 + 关注对象的推文，按创建时间倒序，单页 20 条
// @Tags 时间线
// @Param viewer_id query string true "观察者ID"
// @Param page query int false "页码，从1开始"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
    views, err := h.timelineService.GetFeed(c.Request.Context(), c.Query("viewer_id"), pageQuery(c))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, views)
}

// ListBookmarks 收藏列表
// @Summary 收藏列表
// @Description 按收藏时间倒序
// @Tags 时间线
// @Param viewer_id query string true "观察者ID"
// @Param page query int false "页码，从1开始"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/bookmarks [get]
func (h *Handler) ListBookmarks(c *gin.Context) {
    views, err := h.timelineService.ListBookmarks(c.Request.Context(), c.Query("viewer_id"), pageQuery(c))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, views)
}
