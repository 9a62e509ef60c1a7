package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/models"
)

func GetStations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.Station{})
			return
		}

		var stations []models.Station
		if err := db.Order("name asc").Find(&stations).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch stations")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stations"})
			return
		}
		c.JSON(http.StatusOK, stations)
	}
}

func GetColleges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.College{})
			return
		}

		var colleges []models.College
		if err := db.Order("name asc").Find(&colleges).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch colleges")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching colleges"})
			return
		}
		c.JSON(http.StatusOK, colleges)
	}
}
