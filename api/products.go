package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"toxiscope/services"
)

func setupProductRoutes(api *gin.RouterGroup, products *services.ProductService, resp *responder) {
	api.GET("/product/:id", func(c *gin.Context) {
		eval, err := products.Evaluate(c.Request.Context(), c.Param("id"))
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product evaluation not found"})
			return
		}
		if err != nil {
			resp.internalError(c, "Failed to fetch product evaluation", err)
			return
		}
		productEvaluationsServed.Inc()
		c.JSON(http.StatusOK, eval)
	})

	api.GET("/product/:id/bibliography", func(c *gin.Context) {
		id := c.Param("id")
		refs, warnings, err := products.Bibliography(c.Request.Context(), id)
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product evaluation not found"})
			return
		}
		if err != nil {
			resp.internalError(c, "Failed to build bibliography", err)
			return
		}
		if warnings == nil {
			warnings = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"productId": id, "references": refs, "warnings": warnings})
	})
}
