package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"toxiscope/catalogue"
	"toxiscope/services"
)

func setupStudyRoutes(api *gin.RouterGroup, cat *catalogue.Catalogue, resp *responder) {
	api.GET("/studies", func(c *gin.Context) {
		// Zusammenfassungen haben Vorrang vor Filtern
		switch {
		case c.Query("stats") == "true":
			c.JSON(http.StatusOK, gin.H{"stats": cat.Stats(), "totalStudies": cat.Len()})
			return
		case c.Query("chemicals") == "true":
			c.JSON(http.StatusOK, gin.H{"chemicals": cat.Chemicals()})
			return
		case c.Query("categories") == "true":
			c.JSON(http.StatusOK, gin.H{"categories": cat.Categories()})
			return
		}

		filter := services.StudyFilter{
			Chemical:   c.Query("chemical"),
			Category:   c.Query("category"),
			Dimension:  c.Query("dimension"),
			Search:     c.Query("search"),
			Seminal:    c.Query("seminal") == "true",
			HighImpact: c.Query("highImpact") == "true",
		}
		// Unlesbare Schwellen fallen auf den Standard zurück
		if n, err := strconv.Atoi(c.Query("impactThreshold")); err == nil {
			filter.ImpactThreshold = n
		}

		c.JSON(http.StatusOK, services.QueryStudies(cat, filter))
	})

	api.GET("/studies/:id", func(c *gin.Context) {
		study, err := cat.ByID(c.Param("id"))
		if errors.Is(err, catalogue.ErrStudyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Study not found"})
			return
		}
		if err != nil {
			resp.internalError(c, "Failed to fetch study", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"study": study, "reference": services.FormatReference(study)})
	})
}
