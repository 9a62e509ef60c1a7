package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/middlewares"
	"github.com/Aniket-49001/Railway-Concession/models"
)

// SubmitApplication files a travel-concession application for the
// logged-in student. It starts Pending and waits for review.
func SubmitApplication(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database not connected"})
			return
		}

		var input struct {
			FullName    string `json:"fullName"`
			Source      string `json:"source" binding:"required"`
			Destination string `json:"destination" binding:"required"`
			Reason      string `json:"reason"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Source and destination are required"})
			return
		}

		collegeID := c.GetUint(middlewares.ContextCollegeID)
		if collegeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Account is not linked to a college"})
			return
		}

		app := models.ConcessionApplication{
			UserEmail:   c.GetString(middlewares.ContextEmail),
			FullName:    input.FullName,
			CollegeID:   collegeID,
			Source:      input.Source,
			Destination: input.Destination,
			Reason:      input.Reason,
			Status:      models.ApplicationPending,
		}

		if err := db.Create(&app).Error; err != nil {
			logrus.WithError(err).Error("failed to create application")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting application"})
			return
		}
		c.JSON(http.StatusCreated, app)
	}
}

// ListApplications is role-scoped: students see their own, college admins
// their college's, railway staff everything.
func ListApplications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, []models.ConcessionApplication{})
			return
		}

		query := db.Model(&models.ConcessionApplication{}).Order("created_at desc")
		switch c.GetString(middlewares.ContextRole) {
		case models.RoleRailway:
			// no filter
		case models.RoleCollegeAdmin:
			query = query.Where("college_id = ?", c.GetUint(middlewares.ContextCollegeID))
		default:
			query = query.Where("user_email = ?", c.GetString(middlewares.ContextEmail))
		}

		var apps []models.ConcessionApplication
		if err := query.Find(&apps).Error; err != nil {
			logrus.WithError(err).Error("failed to fetch applications")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching applications"})
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}

// UpdateApplicationStatus moves a Pending application to Approved or
// Rejected. College admins may only decide applications from their own
// college; railway staff may decide any.
func UpdateApplicationStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database not connected"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil ||
			(input.Status != models.ApplicationApproved && input.Status != models.ApplicationRejected) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be Approved or Rejected"})
			return
		}

		var app models.ConcessionApplication
		if err := db.First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
				return
			}
			logrus.WithError(err).Error("failed to fetch application")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating application"})
			return
		}

		role := c.GetString(middlewares.ContextRole)
		if role == models.RoleCollegeAdmin && app.CollegeID != c.GetUint(middlewares.ContextCollegeID) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Application belongs to another college"})
			return
		}

		if app.Status != models.ApplicationPending {
			c.JSON(http.StatusConflict, gin.H{"message": "Application has already been decided"})
			return
		}

		app.Status = input.Status
		app.ReviewedBy = c.GetString(middlewares.ContextEmail)
		if err := db.Save(&app).Error; err != nil {
			logrus.WithError(err).Error("failed to update application")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating application"})
			return
		}
		c.JSON(http.StatusOK, app)
	}
}
