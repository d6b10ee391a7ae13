package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/pkg/utils"
)

type CourseRepo struct{ db *gorm.DB }

func NewCourseRepo(db *gorm.DB) *CourseRepo { return &CourseRepo{db: db} }

func (r *CourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	courses := make([]domain.Course, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepo) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	if _, err := utils.ParseID(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	return r.first(ctx, "id = ?", id)
}

func (r *CourseRepo) FindByName(ctx context.Context, name string) (*domain.Course, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *CourseRepo) first(ctx context.Context, query string, arg any) (*domain.Course, error) {
	var c domain.Course
	err := r.db.WithContext(ctx).First(&c, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepo) Create(ctx context.Context, c *domain.Course) error {
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	err := r.db.WithContext(ctx).Create(c).Error
	if err != nil && isDupKey(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Update 全字段写回（含零值），id 与 createdAt 不动
func (r *CourseRepo) Update(ctx context.Context, c *domain.Course) error {
	if _, err := utils.ParseID(c.ID); err != nil {
		return domain.ErrMalformedID
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at").
		Updates(c)
	if res.Error != nil {
		if isDupKey(res.Error) {
			return domain.ErrAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// mysql 对值未变化的行也报 0，再确认一次记录是否还在
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Course{}).Where("id = ?", c.ID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CourseRepo) Delete(ctx context.Context, id string) (*domain.Course, error) {
	if _, err := utils.ParseID(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	var c domain.Course
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Course{}, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
