package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toxiscope/models"
)

type addHomeProductsRequest struct {
	Products *[]models.HomeProduct `json:"products"`
	ScanID   string                `json:"scanId"`
}

// Das Inventar liegt vorerst im localStorage des Clients; die Routen bestätigen nur.
func setupMyHomeRoutes(api *gin.RouterGroup) {
	api.GET("/my-home", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Use client-side localStorage for now. Products stored locally.",
		})
	})

	api.POST("/my-home", func(c *gin.Context) {
		var req addHomeProductsRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Products == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid products data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Products should be saved to localStorage on client side",
			"products": *req.Products,
		})
	})

	api.DELETE("/my-home", func(c *gin.Context) {
		if c.Query("productId") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product should be removed from localStorage on client side",
		})
	})
}
