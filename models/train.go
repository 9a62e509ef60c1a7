package models

import "time"

const (
	TrainTypeExpress   = "Express"
	TrainTypePassenger = "Passenger"
	TrainTypeLocal     = "Local"
	TrainTypeSuperfast = "Superfast"
)

const (
	TrainOnTime    = "On Time"
	TrainDelayed   = "Delayed"
	TrainCancelled = "Cancelled"
)

type Train struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	TrainNumber    string    `gorm:"uniqueIndex;size:10;not null" json:"trainNumber"`
	TrainName      string    `gorm:"size:100;not null" json:"trainName"`
	Source         string    `gorm:"size:100;not null" json:"source"`
	Destination    string    `gorm:"size:100;not null" json:"destination"`
	TotalSeats     int       `gorm:"not null" json:"totalSeats"`
	AvailableSeats int       `gorm:"not null" json:"availableSeats"`
	DepartureTime  string    `gorm:"size:10" json:"departureTime"`
	ArrivalTime    string    `gorm:"size:10" json:"arrivalTime"`
	Fare           float64   `gorm:"type:decimal(10,2);not null" json:"fare"`
	TrainType      string    `gorm:"size:20;default:'Express'" json:"trainType"`
	Status         string    `gorm:"size:20;default:'On Time'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ValidTrainType(t string) bool {
	switch t {
	case TrainTypeExpress, TrainTypePassenger, TrainTypeLocal, TrainTypeSuperfast:
		return true
	}
	return false
}
