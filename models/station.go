package models

import "time"

type Station struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:10;not null" json:"code"`
	City      string    `gorm:"size:100;not null" json:"city"`
	State     string    `gorm:"size:100;not null" json:"state"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
