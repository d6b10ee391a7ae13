package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/internal/service"
	"github.com/MillionChau/Frontend-CourseApp/internal/transport/http/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

// stubCourses 每个方法返回预设的结果
type stubCourses struct {
	course *domain.Course
	list   []domain.Course
	err    error
	gotIn  domain.CourseInput
}

func (s *stubCourses) List(context.Context) ([]domain.Course, error) { return s.list, s.err }
func (s *stubCourses) Create(_ context.Context, in domain.CourseInput) (*domain.Course, error) {
	s.gotIn = in
	return s.course, s.err
}
func (s *stubCourses) Get(context.Context, string) (*domain.Course, error) { return s.course, s.err }
func (s *stubCourses) Update(_ context.Context, _ string, in domain.CourseInput) (*domain.Course, error) {
	s.gotIn = in
	return s.course, s.err
}
func (s *stubCourses) Delete(context.Context, string) (*domain.Course, error) { return s.course, s.err }

type stubUsers struct {
	user  *domain.User
	login *service.LoginResult
	err   error
}

func (s *stubUsers) Register(context.Context, service.RegisterInput) (*domain.User, error) {
	return s.user, s.err
}
func (s *stubUsers) Login(context.Context, service.LoginInput) (*service.LoginResult, error) {
	return s.login, s.err
}

func engine(mods ...interface{ MountAPI(*gin.RouterGroup) }) *gin.Engine {
	r := gin.New()
	r.Use(middleware.MaxBodyBytes(1 << 10))
	api := r.Group("/api")
	for _, m := range mods {
		m.MountAPI(api)
	}
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCourseHandler_ErrorMapping(t *testing.T) {
	const id = "/api/courses/6740e4b6a4f2c3d2e1f0a9b8"
	dbErr := errors.New("Database query failed")

	cases := []struct {
		name       string
		err        error
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"list store error", dbErr, http.MethodGet, "/api/courses", "", 500, "Database query failed"},
		{"create duplicate", domain.ErrAlreadyExists, http.MethodPost, "/api/courses", `{"name":"React JS"}`, 400, "Course already exists"},
		{"create missing name", domain.Required("name"), http.MethodPost, "/api/courses/", `{}`, 400, "name is required"},
		{"create store error", dbErr, http.MethodPost, "/api/courses", `{"name":"x"}`, 500, "Database query failed"},
		{"edit missing", domain.ErrNotFound, http.MethodGet, id + "/edit", "", 404, "Course not found"},
		{"edit malformed", domain.ErrMalformedID, http.MethodGet, "/api/courses/invalid-id/edit", "", 404, "Course not found"},
		{"edit store error", dbErr, http.MethodGet, id + "/edit", "", 500, "Database query failed"},
		{"update missing", domain.ErrNotFound, http.MethodPut, id, `{"name":"x"}`, 404, "Course not found"},
		{"update malformed", domain.ErrMalformedID, http.MethodPut, "/api/courses/invalid-id", `{"name":"x"}`, 500, "Server Error"},
		{"update store error", dbErr, http.MethodPut, id, `{"name":"x"}`, 500, "Server Error"},
		{"delete missing", domain.ErrNotFound, http.MethodDelete, id, "", 404, "Course not found"},
		{"delete malformed", domain.ErrMalformedID, http.MethodDelete, "/api/courses/invalid-id", "", 500, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := engine(NewCourseHandler(&stubCourses{err: tc.err}, zap.NewNop()))
			w := do(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, `{"message":"`+tc.wantMsg+`"}`, w.Body.String())
		})
	}
}

func TestCourseHandler_Success(t *testing.T) {
	c := &domain.Course{ID: "6740e4b6a4f2c3d2e1f0a9b8", Name: "React JS", VideoID: "ZTbPz2i2Dms"}
	stub := &stubCourses{course: c, list: []domain.Course{*c}}
	r := engine(NewCourseHandler(stub, zap.NewNop()))

	w := do(r, http.MethodGet, "/api/courses/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"videoId":"ZTbPz2i2Dms"`)

	w = do(r, http.MethodPost, "/api/courses", `{"name":"React JS","videoId":"ZTbPz2i2Dms","createdAt":"2024-11-20T07:39:02.583+00:00"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"course":{"_id":"6740e4b6a4f2c3d2e1f0a9b8"`)
	assert.Equal(t, "ZTbPz2i2Dms", stub.gotIn.VideoID)
	assert.Equal(t, 2024, stub.gotIn.CreatedAt.Year())

	w = do(r, http.MethodDelete, "/api/courses/"+c.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Course deleted successfully"`)

	// 空 body：全部字段置空，交给业务层判断
	w = do(r, http.MethodPut, "/api/courses/"+c.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CourseInput{}, stub.gotIn)
}

func TestCourseHandler_BadBody(t *testing.T) {
	r := engine(NewCourseHandler(&stubCourses{}, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/courses", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/courses", `{"name":"`+strings.Repeat("x", 2048)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"message":"Request Entity Too Large"}`, w.Body.String())
}

func TestUserHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"register duplicate", domain.ErrAlreadyExists, "/api/users/register", 400, "User already exists"},
		{"register missing field", domain.Required("email"), "/api/users/register", 400, "email is required"},
		{"register store error", errors.New("boom"), "/api/users/register", 500, "boom"},
		{"login unknown email", domain.ErrNotFound, "/api/users/login", 404, "User not found"},
		{"login bad password", domain.ErrInvalidCredentials, "/api/users/login", 401, "Invalid credentials"},
		{"login store error", errors.New("boom"), "/api/users/login", 500, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := engine(NewUserHandler(&stubUsers{err: tc.err}, zap.NewNop()))
			w := do(r, http.MethodPost, tc.path, `{"email":"a@b.c","password":"x"}`)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, `{"message":"`+tc.wantMsg+`"}`, w.Body.String())
		})
	}
}

func TestUserHandler_Success(t *testing.T) {
	u := &domain.User{ID: "6740e4b6a4f2c3d2e1f0a9b8", Username: "John Doe", Email: "john@example.com", Password: "$2a$10$hash", Role: "user"}
	stub := &stubUsers{
		user:  u,
		login: &service.LoginResult{Token: "tok", User: u.Profile()},
	}
	r := engine(NewUserHandler(stub, zap.NewNop()))

	w := do(r, http.MethodPost, "/api/users/register", `{"username":"John Doe","email":"john@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User registered successfully","user":{"_id":"6740e4b6a4f2c3d2e1f0a9b8","username":"John Doe","email":"john@example.com","role":"user"}}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "$2a$")

	w = do(r, http.MethodPost, "/api/users/login", `{"email":"john@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"tok","user":{"id":"6740e4b6a4f2c3d2e1f0a9b8","username":"John Doe","email":"john@example.com","role":"user"}}`, w.Body.String())
}
