package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/response"
)

// bindJSON 绑定请求体；空 body 视为空对象，交给业务层做必填校验
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		resp.Error(c, http.StatusRequestEntityTooLarge, "")
		return false
	}
	resp.Error(c, http.StatusBadRequest, err.Error())
	return false
}
