package repo

import (
	"gorm.io/gorm"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
)

// AutoMigrate 建表 + 唯一索引（courses.name / users.email）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Course{}, &domain.User{})
}
