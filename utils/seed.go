package utils

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/models"
)

// SeedReferenceData inserts sample stations, trains and colleges when the
// matching tables are empty. Safe to call on every startup.
func SeedReferenceData(db *gorm.DB) {
	seedStations(db)
	seedTrains(db)
	seedColleges(db)
}

func seedStations(db *gorm.DB) {
	var count int64
	db.Model(&models.Station{}).Count(&count)
	if count > 0 {
		return
	}

	stations := []models.Station{
		{Name: "Delhi Central", Code: "DLI", City: "Delhi", State: "Delhi", Latitude: 28.6355, Longitude: 77.2263},
		{Name: "Mumbai Central", Code: "MUM", City: "Mumbai", State: "Maharashtra", Latitude: 18.9711, Longitude: 72.8479},
		{Name: "Bangalore City", Code: "BNG", City: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946},
		{Name: "Kolkata", Code: "KOL", City: "Kolkata", State: "West Bengal", Latitude: 22.5726, Longitude: 88.3639},
		{Name: "Chennai Central", Code: "CHE", City: "Chennai", State: "Tamil Nadu", Latitude: 13.0287, Longitude: 80.2058},
		{Name: "Hyderabad", Code: "HYD", City: "Hyderabad", State: "Telangana", Latitude: 17.3850, Longitude: 78.4867},
		{Name: "Pune", Code: "PUN", City: "Pune", State: "Maharashtra", Latitude: 18.5204, Longitude: 73.8567},
		{Name: "Ahmedabad", Code: "AHM", City: "Ahmedabad", State: "Gujarat", Latitude: 23.0225, Longitude: 72.5714},
	}

	if err := db.Create(&stations).Error; err != nil {
		logrus.WithError(err).Warn("failed to seed stations")
		return
	}
	logrus.Infof("seeded %d stations", len(stations))
}

func seedTrains(db *gorm.DB) {
	var count int64
	db.Model(&models.Train{}).Count(&count)
	if count > 0 {
		return
	}

	trains := []models.Train{
		{TrainNumber: "12001", TrainName: "Shatabdi Express", Source: "Delhi Central", Destination: "Agra Cantt",
			TotalSeats: 400, AvailableSeats: 350, DepartureTime: "06:00 AM", ArrivalTime: "10:15 AM",
			Fare: 400, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
		{TrainNumber: "12002", TrainName: "Rajdhani Express", Source: "Delhi Central", Destination: "Mumbai Central",
			TotalSeats: 500, AvailableSeats: 480, DepartureTime: "04:55 PM", ArrivalTime: "07:45 AM",
			Fare: 2500, TrainType: models.TrainTypeSuperfast, Status: models.TrainOnTime},
		{TrainNumber: "12003", TrainName: "Karnataka Express", Source: "Delhi Central", Destination: "Bangalore City",
			TotalSeats: 450, AvailableSeats: 420, DepartureTime: "03:00 PM", ArrivalTime: "09:45 AM",
			Fare: 2000, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
		{TrainNumber: "12004", TrainName: "Howrah Mail", Source: "Delhi Central", Destination: "Kolkata",
			TotalSeats: 400, AvailableSeats: 380, DepartureTime: "11:00 AM", ArrivalTime: "05:20 AM",
			Fare: 1800, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
		{TrainNumber: "12005", TrainName: "Coromandel Express", Source: "Mumbai Central", Destination: "Chennai Central",
			TotalSeats: 350, AvailableSeats: 320, DepartureTime: "09:00 AM", ArrivalTime: "03:30 PM",
			Fare: 1500, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
		{TrainNumber: "12006", TrainName: "Deccan Express", Source: "Pune", Destination: "Hyderabad",
			TotalSeats: 300, AvailableSeats: 280, DepartureTime: "10:30 PM", ArrivalTime: "06:15 AM",
			Fare: 900, TrainType: models.TrainTypePassenger, Status: models.TrainDelayed},
		{TrainNumber: "12007", TrainName: "Gujarat Express", Source: "Mumbai Central", Destination: "Ahmedabad",
			TotalSeats: 350, AvailableSeats: 340, DepartureTime: "07:00 PM", ArrivalTime: "11:30 PM",
			Fare: 600, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
		{TrainNumber: "12008", TrainName: "Bangalore Express", Source: "Bangalore City", Destination: "Hyderabad",
			TotalSeats: 250, AvailableSeats: 200, DepartureTime: "11:00 AM", ArrivalTime: "05:00 PM",
			Fare: 800, TrainType: models.TrainTypeExpress, Status: models.TrainOnTime},
	}

	if err := db.Create(&trains).Error; err != nil {
		logrus.WithError(err).Warn("failed to seed trains")
		return
	}
	logrus.Infof("seeded %d trains", len(trains))
}

func seedColleges(db *gorm.DB) {
	var count int64
	db.Model(&models.College{}).Count(&count)
	if count > 0 {
		return
	}

	colleges := []models.College{
		{Name: "Government Engineering College Delhi", Code: "GECD", City: "Delhi"},
		{Name: "Mumbai Institute of Technology", Code: "MIT", City: "Mumbai"},
		{Name: "Bangalore Science College", Code: "BSC", City: "Bangalore"},
	}

	if err := db.Create(&colleges).Error; err != nil {
		logrus.WithError(err).Warn("failed to seed colleges")
		return
	}
	logrus.Infof("seeded %d colleges", len(colleges))
}
