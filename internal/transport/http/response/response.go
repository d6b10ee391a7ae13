package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message 所有失败响应的 body：{"message": "..."}
type Message struct {
	Message string `json:"message"`
}

func Msg(status int, customMsg string) Message {
	if customMsg != "" {
		return Message{Message: customMsg}
	}
	if m, ok := StatusMsgMap[status]; ok {
		return Message{Message: m}
	}
	return Message{Message: http.StatusText(status)}
}

// Error 写错误响应并中断后续 handler
func Error(c *gin.Context, status int, customMsg string) {
	c.AbortWithStatusJSON(status, Msg(status, customMsg))
}
