package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"toxiscope/models"
	"toxiscope/services"
)

func setupSearchRoutes(api *gin.RouterGroup, index *services.SearchIndex) {
	api.GET("/search", func(c *gin.Context) {
		query := c.Query("q")
		if strings.TrimSpace(query) == "" {
			productSearches.WithLabelValues("empty").Inc()
			c.JSON(http.StatusOK, gin.H{"query": "", "results": []models.SearchResult{}, "total": 0})
			return
		}

		results := index.Search(query)
		outcome := "hit"
		if len(results) == 0 {
			outcome = "miss"
		}
		productSearches.WithLabelValues(outcome).Inc()
		c.JSON(http.StatusOK, gin.H{"query": query, "results": results, "total": len(results)})
	})
}
