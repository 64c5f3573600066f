package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/pkg/response"
)

type followRequest struct {
    FromUserID string `json:"from_user_id" binding:"required"`
    ToUserID   string `json:"to_user_id" binding:"required"`
}

// Follow 建立关注（幂等）
// @Summary 关注用户
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "关注信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
    var req followRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.relService.Follow(c.Request.Context(), req.FromUserID, req.ToUserID); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "取消关注信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/relations/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
    var req followRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.relService.Unfollow(c.Request.Context(), req.FromUserID, req.ToUserID); err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, nil)
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/relations/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
    userID := c.Param("user_id")
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    list, err := h.relService.ListFollowing(c.Request.Context(), userID, page, pageSize)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// ListFollowers 查询某用户的粉丝
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/relations/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
    userID := c.Param("user_id")
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    list, err := h.relService.ListFollowers(c.Request.Context(), userID, page, pageSize)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// CountRelations 关注/粉丝计数
// @Summary 查询关注数与粉丝数
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/relations/{user_id}/counts [get]
func (h *Handler) CountRelations(c *gin.Context) {
    userID := c.Param("user_id")
    following, err := h.relService.CountFollowing(c.Request.Context(), userID)
    if err != nil {
        writeError(c, err)
        return
    }
    followers, err := h.relService.CountFollowers(c.Request.Context(), userID)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"following": following, "followers": followers})
}
