package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/pkg/response"
)

type createTweetRequest struct {
    AuthorID       string  `json:"author_id" binding:"required"`
    Content        string  `json:"content" binding:"required,notblank"`
    ReplyToTweetID *string `json:"reply_to_tweet_id"`
}

// CreateTweet 发推
// @Summary 发布推文
// @Description reply_to_tweet_id 填原推 id 时为回复，否则为原创
// @Tags 推文
// @Accept json
// @Produce json
// @Param request body createTweetRequest true "推文内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
    var req createTweetRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    view, err := h.tweetService.CreateTweet(c.Request.Context(), req.AuthorID, req.Content, req.ReplyToTweetID)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Created(c, view)
}

// GetTweet 推文详情
// @Summary 推文详情
// @Tags 推文
// @Param tweet_id path string true "推文ID"
// @Param viewer_id query string true "观察者ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id} [get]
func (h *Handler) GetTweet(c *gin.Context) {
    view, err := h.tweetService.GetTweet(c.Request.Context(), c.Query("viewer_id"), c.Param("tweet_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, view)
}

// DeleteTweet 删推（仅作者）
// @Summary 删除推文
// @Tags 推文
// @Param tweet_id path string true "推文ID"
// @Param actor_id query string true "操作者ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
    if err := h.tweetService.DeleteTweet(c.Request.Context(), c.Query("actor_id"), c.Param("tweet_id")); err != nil {
        writeError(c, err)
        return
    }
    response.NoContent(c)
}

type retweetRequest struct {
    ViewerID string `json:"viewer_id" binding:"required"`
    Content  string `json:"content"`
}

// CreateRetweet 转推/引用
// @Summary 转推或引用
// @Description content 为空白 ⇒ 纯转推（同一原推至多一次），否则 ⇒ 引用转推
// @Tags 推文
// @Accept json
// @Produce json
// @Param tweet_id path string true "原推ID"
// @Param request body retweetRequest true "转推信息"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/retweet [post]
func (h *Handler) CreateRetweet(c *gin.Context) {
    var req retweetRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    view, err := h.tweetService.CreateRetweet(c.Request.Context(), req.ViewerID, c.Param("tweet_id"), req.Content)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Created(c, view)
}

// CancelRetweet 取消纯转推
// @Summary 取消纯转推
// @Description 只针对纯转推；引用转推用删除推文接口
// @Tags 推文
// @Param tweet_id path string true "原推ID"
// @Param viewer_id query string true "观察者ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id}/retweet [delete]
func (h *Handler) CancelRetweet(c *gin.Context) {
    if err := h.tweetService.CancelRetweet(c.Request.Context(), c.Query("viewer_id"), c.Param("tweet_id")); err != nil {
        writeError(c, err)
        return
    }
    response.NoContent(c)
}
