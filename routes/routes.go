package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/controllers"
	"github.com/Aniket-49001/Railway-Concession/middlewares"
	"github.com/Aniket-49001/Railway-Concession/models"
	"github.com/Aniket-49001/Railway-Concession/services"
	"github.com/Aniket-49001/Railway-Concession/store"
)

// Deps holds everything the handlers need; DB and Ledger are nil when the
// database is unreachable and the app runs degraded.
type Deps struct {
	DB       *gorm.DB
	Users    store.UserStore
	Sessions *store.SessionStore
	Ledger   *services.Ledger
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public API routes

	api := r.Group("/api")
	{
		api.POST("/register", controllers.RegisterHandler(deps.Users))
		api.POST("/login", controllers.LoginHandler(deps.Users, deps.Sessions))
		api.POST("/logout", controllers.LogoutHandler(deps.Sessions))

		api.GET("/trains", controllers.GetTrains(deps.DB))
		api.GET("/trains/search", controllers.SearchTrains(deps.DB))
		api.GET("/stations", controllers.GetStations(deps.DB))
		api.GET("/colleges", controllers.GetColleges(deps.DB))
	}

	// Routes that require a login

	auth := r.Group("/api").Use(middlewares.AuthMiddleware(deps.Sessions))
	{
		auth.GET("/profile", controllers.ProfileHandler())
		auth.POST("/bookings", controllers.CreateBooking(deps.Ledger))
		auth.POST("/bookings/:id/cancel", controllers.CancelBooking(deps.Ledger))
		auth.GET("/bookings", controllers.GetUserBookings(deps.DB))
		auth.GET("/dashboard/stats", controllers.DashboardStats(deps.DB))

		auth.POST("/applications",
			middlewares.RequireRole(models.RoleStudent),
			controllers.SubmitApplication(deps.DB))
		auth.GET("/applications", controllers.ListApplications(deps.DB))
		auth.PUT("/applications/:id/status",
			middlewares.RequireRole(models.RoleCollegeAdmin, models.RoleRailway),
			controllers.UpdateApplicationStatus(deps.DB))

		auth.POST("/trains",
			middlewares.RequireRole(models.RoleRailway),
			controllers.AddTrain(deps.DB))
	}

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dbConnected": deps.DB != nil})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
