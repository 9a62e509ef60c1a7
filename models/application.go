package models

import "time"

const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:20;not null" json:"code"`
	City      string    `gorm:"size:100" json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// ConcessionApplication is a student's request for discounted travel,
// reviewed by their college admin or the railway authority.
type ConcessionApplication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"index;size:255;not null" json:"userEmail"`
	FullName    string    `gorm:"size:100" json:"fullName"`
	CollegeID   uint      `gorm:"index;not null" json:"collegeId"`
	Source      string    `gorm:"size:100;not null" json:"source"`
	Destination string    `gorm:"size:100;not null" json:"destination"`
	Reason      string    `gorm:"type:text" json:"reason"`
	Status      string    `gorm:"size:20;default:'Pending';index" json:"status"`
	ReviewedBy  string    `gorm:"size:255" json:"reviewedBy,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
