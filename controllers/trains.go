package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/models"
)

// GetTrains lists all trains ordered by departure time. With no database
// the endpoint degrades to an empty list instead of failing.
func GetTrains(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.Train{})
			return
		}

		var trains []models.Train
		if err := db.Order("departure_time asc").Find(&trains).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch trains")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching trains"})
			return
		}
		c.JSON(http.StatusOK, trains)
	}
}

// SearchTrains filters by source and destination substring, case-insensitive.
func SearchTrains(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.Train{})
			return
		}

		query := db.Model(&models.Train{})
		if source := c.Query("source"); source != "" {
			query = query.Where("LOWER(source) LIKE ?", "%"+strings.ToLower(source)+"%")
		}
		if destination := c.Query("destination"); destination != "" {
			query = query.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(destination)+"%")
		}

		var trains []models.Train
		if err := query.Find(&trains).Error; err != nil {
			logrus.WithError(err).Error("failed to search trains")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching trains"})
			return
		}
		c.JSON(http.StatusOK, trains)
	}
}

// AddTrain creates a new train with a full complement of available seats.
func AddTrain(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database not connected"})
			return
		}

		var input struct {
			TrainNumber   string  `json:"trainNumber" binding:"required"`
			TrainName     string  `json:"trainName" binding:"required"`
			Source        string  `json:"source" binding:"required"`
			Destination   string  `json:"destination" binding:"required"`
			TotalSeats    int     `json:"totalSeats" binding:"required,gt=0"`
			DepartureTime string  `json:"departureTime"`
			ArrivalTime   string  `json:"arrivalTime"`
			Fare          float64 `json:"fare" binding:"required,gt=0"`
			TrainType     string  `json:"trainType"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		if input.TrainType == "" {
			input.TrainType = models.TrainTypeExpress
		}
		if !models.ValidTrainType(input.TrainType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid train type"})
			return
		}

		var existing models.Train
		if err := db.Where("train_number = ?", input.TrainNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Train number already exists"})
			return
		}

		train := models.Train{
			TrainNumber:    input.TrainNumber,
			TrainName:      input.TrainName,
			Source:         input.Source,
			Destination:    input.Destination,
			TotalSeats:     input.TotalSeats,
			AvailableSeats: input.TotalSeats,
			DepartureTime:  input.DepartureTime,
			ArrivalTime:    input.ArrivalTime,
			Fare:           input.Fare,
			TrainType:      input.TrainType,
			Status:         models.TrainOnTime,
		}

		if err := db.Create(&train).Error; err != nil {
			logrus.WithError(err).Error("failed to create train")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating train"})
			return
		}
		c.JSON(http.StatusCreated, train)
	}
}
