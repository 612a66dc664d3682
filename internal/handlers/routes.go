package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gift-card-checker-service/internal/middleware"
	"gift-card-checker-service/internal/models"
)

// RegisterRoutes attaches the HTTP surface to the router. Destructive routes
// are guarded by the admin token when one is configured.
func RegisterRoutes(router *gin.Engine, submissions *SubmissionHandler, health *HealthHandler, adminToken string) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})

	api := router.Group("/api")
	{
		giftCards := api.Group("/gift-cards")
		{
			giftCards.GET("", submissions.ListSubmissions)
			giftCards.POST("", submissions.CreateSubmission)
			giftCards.DELETE("", middleware.AdminToken(adminToken), submissions.DeleteAllSubmissions)
			giftCards.GET("/count", submissions.CountSubmissions)
			giftCards.POST("/check", submissions.CheckCard)
			giftCards.DELETE("/by-card/:cardNumber", middleware.AdminToken(adminToken), submissions.DeleteByCard)
		}

		api.GET("/health", health.Status)
	}
}
