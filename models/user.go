package models

import "time"

const (
	RoleStudent      = "student"
	RoleCollegeAdmin = "college_admin"
	RoleRailway      = "railway"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // bcrypt hash
	FullName     string    `gorm:"size:100" json:"fullName"`
	Role         string    `gorm:"size:30;default:'student';not null" json:"role"`
	CollegeID    uint      `gorm:"index" json:"collegeId"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
