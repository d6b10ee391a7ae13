package domain

import (
	"context"
	"time"
)

// Course 课程。JSON 字段名与前端约定一致（_id / videoId / createdAt）
type Course struct {
	ID          string    `gorm:"primaryKey;size:24" json:"_id"`
	Name        string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	VideoID     string    `gorm:"size:64" json:"videoId"`
	Image       string    `gorm:"size:512" json:"image"`
	Level       string    `gorm:"size:64" json:"level"`
	Energy      string    `gorm:"size:255" json:"energy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Course) TableName() string { return "courses" }

// CourseInput 创建/更新时可写的字段
type CourseInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoID     string    `json:"videoId"`
	Image       string    `json:"image"`
	Level       string    `json:"level"`
	Energy      string    `json:"energy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Apply 全量覆盖（未传的字段被置空，不做合并）
func (c *Course) Apply(in CourseInput) {
	c.Name = in.Name
	c.Description = in.Description
	c.VideoID = in.VideoID
	c.Image = in.Image
	c.Level = in.Level
	c.Energy = in.Energy
}

type CourseRepository interface {
	List(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id string) (*Course, error)
	FindByName(ctx context.Context, name string) (*Course, error)
	Create(ctx context.Context, c *Course) error
	Update(ctx context.Context, c *Course) error
	Delete(ctx context.Context, id string) (*Course, error)
}
