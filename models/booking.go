package models

import "time"

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingPending   = "Pending"
)

// Booking carries a denormalized snapshot of the train taken at booking
// time, so later edits to the train never rewrite past tickets.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	BookingID   string    `gorm:"uniqueIndex;size:40;not null" json:"bookingId"`
	UserEmail   string    `gorm:"index;size:255;not null" json:"userEmail"`
	TrainNumber string    `gorm:"index;size:10;not null" json:"trainNumber"`
	TrainName   string    `gorm:"size:100" json:"trainName"`
	Source      string    `gorm:"size:100" json:"source"`
	Destination string    `gorm:"size:100" json:"destination"`
	Passengers  int       `gorm:"not null" json:"passengers"`
	TotalFare   float64   `gorm:"type:decimal(10,2)" json:"totalFare"`
	Status      string    `gorm:"size:20;default:'Confirmed';index" json:"status"`
	BookingDate time.Time `gorm:"autoCreateTime" json:"bookingDate"`
	JourneyDate time.Time `json:"journeyDate"`
}
