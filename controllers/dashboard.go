package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/middlewares"
	"github.com/Aniket-49001/Railway-Concession/models"
)

// DashboardStats aggregates the caller's booking totals plus system-wide
// train occupancy, mirroring the numbers the frontend dashboard shows.
func DashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{
				"totalTrains":     0,
				"totalBookings":   0,
				"totalPassengers": 0,
				"totalRevenue":    0,
				"occupancyRate":   0,
			})
			return
		}

		email := c.GetString(middlewares.ContextEmail)

		var totalTrains int64
		db.Model(&models.Train{}).Count(&totalTrains)

		var totalBookings int64
		db.Model(&models.Booking{}).Where("user_email = ?", email).Count(&totalBookings)

		var bookingTotals struct {
			TotalPassengers int64
			TotalRevenue    float64
		}
		if err := db.Model(&models.Booking{}).
			Select("COALESCE(SUM(passengers), 0) AS total_passengers, COALESCE(SUM(total_fare), 0) AS total_revenue").
			Where("user_email = ?", email).
			Scan(&bookingTotals).Error; err != nil {
			logrus.WithError(err).Error("failed to aggregate bookings")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching statistics"})
			return
		}

		var seatTotals struct {
			Total     int64
			Available int64
		}
		if err := db.Model(&models.Train{}).
			Select("COALESCE(SUM(total_seats), 0) AS total, COALESCE(SUM(available_seats), 0) AS available").
			Scan(&seatTotals).Error; err != nil {
			logrus.WithError(err).Error("failed to aggregate seats")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching statistics"})
			return
		}

		occupancyRate := 0.0
		if seatTotals.Total > 0 {
			occupancyRate = float64(seatTotals.Total-seatTotals.Available) / float64(seatTotals.Total) * 100
			occupancyRate = math.Round(occupancyRate*100) / 100
		}

		c.JSON(http.StatusOK, gin.H{
			"totalTrains":     totalTrains,
			"totalBookings":   totalBookings,
			"totalPassengers": bookingTotals.TotalPassengers,
			"totalRevenue":    bookingTotals.TotalRevenue,
			"occupancyRate":   occupancyRate,
		})
	}
}
