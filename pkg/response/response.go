package response

import (
    "net/http"

    "github.com/gin-gonic/gin"
)

// Response 统一响应包
type Response struct {
    Code    int         `json:"code"`
    Message string      `json:"message"`
    Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
    c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func Created(c *gin.Context, data interface{}) {
    c.JSON(http.StatusCreated, Response{Code: 0, Message: "ok", Data: data})
}

func NoContent(c *gin.Context) {
    c.Status(http.StatusNoContent)
}

func BadRequest(c *gin.Context, msg string) {
    c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
    c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

func Conflict(c *gin.Context, msg string) {
    c.JSON(http.StatusConflict, Response{Code: http.StatusConflict, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
    c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Message: msg})
}

func TooManyRequests(c *gin.Context, msg string) {
    c.JSON(http.StatusTooManyRequests, Response{Code: http.StatusTooManyRequests, Message: msg})
}

func InternalError(c *gin.Context, err error) {
    c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: err.Error()})
}
