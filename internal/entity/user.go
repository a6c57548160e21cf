package entity

import "time"

const (
	RoleStudent = "student"
	RoleParent  = "parent"
)

// User - Akun anak (student) atau orang tua (parent)
type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:50;not null" json:"username"` // selalu lowercase
	DisplayName string    `gorm:"size:100;not null" json:"display_name"`
	Password    string    `gorm:"size:100;not null" json:"-"`                         // bcrypt hash
	Role        string    `gorm:"size:20;not null;default:student;index" json:"role"` // student, parent
	Avatar      string    `gorm:"size:32" json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsParent() bool {
	return u.Role == RoleParent
}
