package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	mdw "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/middleware"
	resp "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/response"
)

const (
	msgCourseExists   = "Course already exists"
	msgCourseNotFound = "Course not found"
	msgCourseDeleted  = "Course deleted successfully"
	msgServerError    = "Server Error"
)

type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Update(ctx context.Context, id string, in domain.CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) (*domain.Course, error)
}

type CourseHandler struct {
	svc CourseService
	log *zap.Logger
}

func NewCourseHandler(svc CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: log}
}

// MountAPI /api/courses
func (h *CourseHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/courses")
	for _, p := range []string{"", "/"} {
		g.GET(p, h.List)
		g.POST(p, h.Create)
	}
	g.GET("/:id/edit", h.Edit)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CourseHandler) Priority() int { return 10 }

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list courses", err, "")
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var in domain.CourseInput
	if !bindJSON(c, &in) {
		return
	}
	course, err := h.svc.Create(c.Request.Context(), in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"course": course})
	case errors.Is(err, domain.ErrAlreadyExists):
		resp.Error(c, http.StatusBadRequest, msgCourseExists)
	case domain.IsValidation(err):
		resp.Error(c, http.StatusBadRequest, err.Error())
	default:
		h.fail(c, "create course", err, "")
	}
}

// Edit 取单条课程用于编辑；非法 id 与不存在一样返回 404
func (h *CourseHandler) Edit(c *gin.Context) {
	course, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, course)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMalformedID):
		resp.Error(c, http.StatusNotFound, msgCourseNotFound)
	default:
		h.fail(c, "get course", err, "")
	}
}

// Update 非法 id 走 500 "Server Error"，与记录不存在（404）区分
func (h *CourseHandler) Update(c *gin.Context) {
	var in domain.CourseInput
	if !bindJSON(c, &in) {
		return
	}
	course, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, course)
	case errors.Is(err, domain.ErrNotFound):
		resp.Error(c, http.StatusNotFound, msgCourseNotFound)
	default:
		h.fail(c, "update course", err, msgServerError)
	}
}

func (h *CourseHandler) Delete(c *gin.Context) {
	course, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": msgCourseDeleted, "course": course})
	case errors.Is(err, domain.ErrNotFound):
		resp.Error(c, http.StatusNotFound, msgCourseNotFound)
	default:
		// 默认文案 "Internal Server Error"
		h.fail(c, "delete course", err, resp.StatusMsgMap[http.StatusInternalServerError])
	}
}

// fail 500；msg 为空时把底层错误原文返回给客户端
func (h *CourseHandler) fail(c *gin.Context, op string, err error, msg string) {
	h.log.Error(op+" failed",
		zap.Error(err),
		zap.String("id", c.Param("id")),
		zap.String("request_id", mdw.RequestIDFrom(c)),
	)
	if msg == "" {
		msg = err.Error()
	}
	resp.Error(c, http.StatusInternalServerError, msg)
}
