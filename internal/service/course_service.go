package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/MillionChau/Frontend-CourseApp/internal/core/cache"
	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
)

const courseListKey = "courses:all"

type CourseService struct {
	repo  domain.CourseRepository
	cache cache.Store // 可为 nil
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
}

type CourseOption func(*CourseService)

// WithListCache 开启课程列表读穿缓存，增删改后失效
func WithListCache(c cache.Store, ttl time.Duration) CourseOption {
	return func(s *CourseService) {
		s.cache = c
		s.ttl = ttl
	}
}

func NewCourseService(repo domain.CourseRepository, log *zap.Logger, opts ...CourseOption) *CourseService {
	s := &CourseService{repo: repo, log: log, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	if s.cache == nil {
		return s.list(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, courseListKey, s.ttl, s.list)
}

func (s *CourseService) list(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

// Create 名称唯一：先查重，再插入；并发下由唯一索引兜底
func (s *CourseService) Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	if in.Name == "" {
		return nil, domain.Required("name")
	}
	_, err := s.repo.FindByName(ctx, in.Name)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	c := &domain.Course{CreatedAt: in.CreatedAt}
	c.Apply(in)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 全量覆盖 name/description/videoId/image/level/energy
func (s *CourseService) Update(ctx context.Context, id string, in domain.CourseInput) (*domain.Course, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Apply(in)
	if c.Name == "" {
		return nil, domain.Required("name")
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) (*domain.Course, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, courseListKey); err != nil {
		s.log.Warn("course list cache invalidate failed", zap.Error(err))
	}
}
