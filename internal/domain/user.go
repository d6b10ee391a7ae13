package domain

import "context"

const RoleUser = "user"

type User struct {
	ID       string `gorm:"primaryKey;size:24" json:"_id"`
	Username string `gorm:"size:64" json:"username"`
	Email    string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"` // 只存 bcrypt 哈希
	Role     string `gorm:"size:16;not null;default:user" json:"role"`
}

func (User) TableName() string { return "users" }

// Profile 登录返回的脱敏用户信息
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}
