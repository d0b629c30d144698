package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// RequestID 透传上游带来的请求 ID，没有就生成一个；
// 同时写回响应头，方便把一次调用在日志里串起来。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Next()
	}
}

// GetRequestID 供 handler 在业务日志里带上同一个 ID
func GetRequestID(c *gin.Context) string { return c.GetString(KeyRequestID) }
