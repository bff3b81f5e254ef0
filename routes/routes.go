package routes

import (
	"net/http"
	"time"

	"conectcliente/handlers"
	"conectcliente/middleware"
	"conectcliente/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.RegisterClientHandler)
		api.POST("/login", hb.AuthenticateClientHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo))
		api.GET("/me", hb.GetClientHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/revoke", hb.RevokeClientAuthTokenHandler)
		api.DELETE("/delete", hb.DeleteClientHandler)
	}
}

// RegisterWizardRoutes registers the booking conversation endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/atendimento")
	api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo))
	{
		api.POST("/session", hb.StartSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.POST("/session/:sessionID/answer", hb.SubmitAnswer)
		api.POST("/session/:sessionID/date", hb.SelectDate)
		api.POST("/session/:sessionID/time", hb.SelectTime)
		api.POST("/session/:sessionID/restart", hb.RestartSession)
	}
}

// RegisterScheduleRoutes registers the booked-flights overview endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agenda")
	api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo))
	{
		api.GET("", hb.ScheduleOverview)
		api.GET("/mine", hb.MyBookings)
	}
}

// RegisterFeedbackRoutes registers feedback endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	api.Use(middleware.ClientAuthMiddleware(hb.ClientRepo))
	{
		api.POST("", hb.SubmitFeedback)
		api.GET("", hb.ListFeedback)
	}
}

// RegisterCatalogRoutes registers the public service catalogue endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/servicos", hb.ListServices)
}

// RegisterHealthRoute exposes the latest health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
