package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/middlewares"
	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/services"
)

// CreateBooking books seats on a train for the logged-in user. All
// validation and the seat decrement live in the ledger.
func CreateBooking(ledger *services.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ledger == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database not connected"})
			return
		}

		var req struct {
			TrainNumber string `json:"trainNumber"`
			Passengers  int    `json:"passengers"`
			JourneyDate string `json:"journeyDate"`
		}

		if err := c.ShouldBindJSON(&req); err != nil || req.TrainNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking details"})
			return
		}

		email := c.GetString(middlewares.ContextEmail)
		booking, err := ledger.Book(c.Request.Context(), email, req.TrainNumber, req.Passengers, req.JourneyDate)
		if err != nil {
			writeLedgerError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Booking successful", "booking": booking})
	}
}

// CancelBooking cancels one of the caller's bookings and returns its
// seats to the train.
func CancelBooking(ledger *services.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ledger == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database not connected"})
			return
		}

		email := c.GetString(middlewares.ContextEmail)
		booking, err := ledger.Cancel(c.Request.Context(), email, c.Param("id"))
		if err != nil {
			writeLedgerError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": booking})
	}
}

// GetUserBookings lists the caller's bookings, newest first.
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.Booking{})
			return
		}

		email := c.GetString(middlewares.ContextEmail)
		var bookings []models.Booking
		if err := db.Where("user_email = ?", email).Order("booking_date desc").Find(&bookings).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch bookings")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTrainNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Train not found"})
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
	case errors.Is(err, services.ErrInvalidPassengers), errors.Is(err, services.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking details"})
	case errors.Is(err, services.ErrNotEnoughSeats):
		c.JSON(http.StatusConflict, gin.H{"message": "Not enough seats available"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "Booking belongs to another user"})
	case errors.Is(err, services.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"message": "Booking already cancelled"})
	default:
		logrus.WithError(err).Error("booking operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error booking ticket"})
	}
}
