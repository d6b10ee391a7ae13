package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/pkg/utils"
)

type TokenIssuer interface {
	Issue(id, role string) (string, error)
}

type UserService struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

func NewUserService(repo domain.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// Register 邮箱唯一；密码落库前做 bcrypt
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	required := []struct{ field, v string }{
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.v) == "" {
			return nil, domain.Required(r.field)
		}
	}
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hashed,
		Role:     role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 校验密码并签发 1 小时有效的令牌（claims: id, role）
func (s *UserService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.Required("email")
	}
	if in.Password == "" {
		return nil, domain.Required("password")
	}
	u, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(in.Password, u.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok, User: u.Profile()}, nil
}
