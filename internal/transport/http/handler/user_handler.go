package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/internal/service"
	mdw "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/middleware"
	resp "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/response"
)

const (
	msgUserExists         = "User already exists"
	msgUserRegistered     = "User registered successfully"
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "Invalid credentials"
)

type UserService interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error)
}

type UserHandler struct {
	svc UserService
	log *zap.Logger
}

func NewUserHandler(svc UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// MountAPI /api/users
func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

func (h *UserHandler) Priority() int { return 20 }

// Register 返回的 user 不含密码哈希
func (h *UserHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": msgUserRegistered, "user": u})
	case errors.Is(err, domain.ErrAlreadyExists):
		resp.Error(c, http.StatusBadRequest, msgUserExists)
	case domain.IsValidation(err):
		resp.Error(c, http.StatusBadRequest, err.Error())
	default:
		h.fail(c, "register", err)
	}
}

func (h *UserHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.svc.Login(c.Request.Context(), in)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, out)
	case errors.Is(err, domain.ErrNotFound):
		resp.Error(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Error(c, http.StatusUnauthorized, msgInvalidCredentials)
	case domain.IsValidation(err):
		resp.Error(c, http.StatusBadRequest, err.Error())
	default:
		h.fail(c, "login", err)
	}
}

func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", zap.Error(err), zap.String("request_id", mdw.RequestIDFrom(c)))
	resp.Error(c, http.StatusInternalServerError, err.Error())
}
