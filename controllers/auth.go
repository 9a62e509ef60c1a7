package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Aniket-49001/Railway-Concession/middlewares"
	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/store"
	"github.com/Aniket-49001/Railway-Concession/utils"
)

// RegisterHandler handles new account creation.
func RegisterHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email     string `json:"email" binding:"required,email"`
			Password  string `json:"password" binding:"required,min=6"`
			FullName  string `json:"fullName"`
			CollegeID uint   `json:"collegeId"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required, password must be at least 6 characters."})
			return
		}

		user := models.User{
			Email:     strings.ToLower(input.Email),
			FullName:  input.FullName,
			Role:      models.RoleStudent,
			CollegeID: input.CollegeID,
		}

		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		user.PasswordHash = hashed

		if err := users.Create(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"message": "Email is already in use."})
				return
			}
			logrus.WithError(err).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created! Please log in."})
	}
}

// LoginHandler validates credentials, opens a server-side session and
// returns a bearer token for API clients.
func LoginHandler(users store.UserStore, sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), input.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
				return
			}
			logrus.WithError(err).Error("login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}

		sess, err := sessions.Create(user.Email, user.Role, user.CollegeID)
		if err != nil {
			logrus.WithError(err).Error("session create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		token, err := utils.CreateToken(user.Email, user.Role, user.CollegeID)
		if err != nil {
			logrus.WithError(err).Error("token create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.SetCookie(middlewares.SessionCookie, sess.Token, int(sessions.TTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful.",
			"token":   token,
			"user": gin.H{
				"email":     user.Email,
				"role":      user.Role,
				"collegeId": user.CollegeID,
			},
		})
	}
}

func LogoutHandler(sessions *store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middlewares.SessionCookie); err == nil && token != "" {
			sessions.Destroy(token)
		}
		c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func ProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":     c.GetString(middlewares.ContextEmail),
			"role":      c.GetString(middlewares.ContextRole),
			"collegeId": c.GetUint(middlewares.ContextCollegeID),
		})
	}
}
