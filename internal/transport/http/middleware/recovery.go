package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/response"
)

// Recovery panic → 500 {"message":"Internal Server Error"}，并记录堆栈
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", RequestIDFrom(c)),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					resp.Error(c, http.StatusInternalServerError, "")
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
