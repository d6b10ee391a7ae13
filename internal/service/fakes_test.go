package service

import (
	"context"
	"sync"
	"time"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/pkg/utils"
)

// memCourses 内存版课程仓储；err 非空时所有方法直接返回该错误
type memCourses struct {
	mu    sync.Mutex
	items []domain.Course
	err   error
	lists int
}

func (m *memCourses) List(context.Context) ([]domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Course(nil), m.items...), nil
}

func (m *memCourses) idx(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memCourses) FindByID(_ context.Context, id string) (*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, err := utils.ParseID(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	i := m.idx(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	c := m.items[i]
	return &c, nil
}

func (m *memCourses) FindByName(_ context.Context, name string) (*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.items {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCourses) Create(_ context.Context, c *domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	c.ID = utils.NewID()
	m.items = append(m.items, *c)
	return nil
}

func (m *memCourses) Update(_ context.Context, c *domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	i := m.idx(c.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	m.items[i] = *c
	return nil
}

func (m *memCourses) Delete(_ context.Context, id string) (*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, err := utils.ParseID(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	i := m.idx(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	c := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	return &c, nil
}

type memUsers struct {
	mu    sync.Mutex
	items []domain.User
	err   error
}

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	u.ID = utils.NewID()
	m.items = append(m.items, *u)
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.items {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// mapCache 进程内 cache.Store
type mapCache struct {
	mu          sync.Mutex
	m           map[string][]byte
	invalidated int
	failDel     error
}

func newMapCache() *mapCache { return &mapCache{m: map[string][]byte{}} }

func (c *mapCache) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.m[key]; ok {
		return b, nil
	}
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.m[key] = b
	return b, nil
}

func (c *mapCache) Invalidate(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	if c.failDel != nil {
		return c.failDel
	}
	for _, k := range keys {
		delete(c.m, k)
	}
	return nil
}
