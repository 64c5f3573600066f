package handler

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

const searchDateLayout = "2006-01-02"

type searchRequest struct {
    ViewerID string `form:"viewer_id" binding:"required"`
    Keyword  string `form:"keyword"`
    Since    string `form:"since" binding:"omitempty,datetime=2006-01-02"`
    Until    string `form:"until" binding:"omitempty,datetime=2006-01-02"`
}

// 关键字和日期都可省略，但不能全空（服务层兜底）
func (r searchRequest) toQuery() service.SearchQuery {
    q := service.SearchQuery{Keyword: r.Keyword}
    if r.Since != "" {
        t, _ := time.Parse(searchDateLayout, r.Since)
        q.Since = &t
    }
    if r.Until != "" {
        t, _ := time.Parse(searchDateLayout, r.Until)
        q.Until = &t
    }
    return q
}

// SearchAll 全站搜索
// @Summary 搜索全部推文
// @Description keyword 模糊匹配，since/until 为日期闭区间，至少给一个条件
// @Tags 搜索
// @Param viewer_id query string true "观察者ID"
// @Param keyword query string false "关键字"
// @Param since query string false "起始日期 YYYY-MM-DD"
// @Param until query string false "截止日期 YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/search [get]
func (h *Handler) SearchAll(c *gin.Context) {
    var req searchRequest
    if err := c.ShouldBindQuery(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    views, err := h.searchService.SearchAll(c.Request.Context(), req.ViewerID, req.toQuery())
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, views)
}

// SearchUser 按作者搜索
// @Summary 搜索指定用户的推文
// @Tags 搜索
// @Param username path string true "作者用户名"
// @Param viewer_id query string true "观察者ID"
// @Param keyword query string false "关键字"
// @Param since query string false "起始日期 YYYY-MM-DD"
// @Param until query string false "截止日期 YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/search/users/{username} [get]
func (h *Handler) SearchUser(c *gin.Context) {
    var req searchRequest
    if err := c.ShouldBindQuery(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    views, err := h.searchService.SearchUser(c.Request.Context(), req.ViewerID, c.Param("username"), req.toQuery())
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, views)
}

// SearchBookmarked 收藏内搜索
// @Summary 搜索自己收藏的推文
// @Tags 搜索
// @Param viewer_id query string true "观察者ID"
// @Param keyword query string false "关键字"
// @Param since query string false "起始日期 YYYY-MM-DD"
// @Param until query string false "截止日期 YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/search/bookmarks [get]
func (h *Handler) SearchBookmarked(c *gin.Context) {
    var req searchRequest
    if err := c.ShouldBindQuery(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    views, err := h.searchService.SearchBookmarked(c.Request.Context(), req.ViewerID, req.toQuery())
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, views)
}
