package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"toxiscope/services"
)

type waitlistRequest struct {
	Email string `json:"email"`
}

func setupWaitlistRoutes(api *gin.RouterGroup, waitlist *services.WaitlistService, apiKey string, limiter *rate.Limiter, resp *responder) {
	api.POST("/waitlist", rateLimit(limiter), func(c *gin.Context) {
		var req waitlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		_, err := waitlist.Join(c.Request.Context(), req.Email)
		switch {
		case errors.Is(err, services.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already on the waitlist"})
		case err != nil:
			resp.internalError(c, "Failed to process waitlist signup", err)
		default:
			waitlistSignups.Inc()
			c.JSON(http.StatusCreated, gin.H{"message": "Successfully joined the waitlist!", "success": true})
		}
	})

	api.GET("/waitlist", apiKeyAuth(apiKey), func(c *gin.Context) {
		entries, err := waitlist.List(c.Request.Context())
		if err != nil {
			resp.internalError(c, "Failed to fetch waitlist", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
	})
}
