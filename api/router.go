// Package api stellt die HTTP-Schnittstelle (gin) bereit.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"toxiscope/catalogue"
	"toxiscope/config"
	"toxiscope/services"
)

// Deps sind die Abhängigkeiten des Routers.
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Catalogue *catalogue.Catalogue
	Products  *services.ProductService
	Search    *services.SearchIndex
	Scanner   *services.ScanService
	Waitlist  *services.WaitlistService
	// ProductCount für /healthz
	ProductCount int
}

// NewRouter baut die gin-Engine mit allen Routen und Middlewares.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	log := d.Logger
	resp := &responder{log: log, production: cfg.IsProduction()}

	router := gin.New()
	router.MaxMultipartMemory = maxScanMemory
	router.Use(correlationID())
	router.Use(recovery(log, cfg.IsProduction()))
	router.Use(requestLogger(log))
	router.Use(metricsMiddleware())
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		router.Use(corsMiddleware(origins))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "toxiscope",
			"studies":  d.Catalogue.Len(),
			"products": d.ProductCount,
		})
	})

	api := router.Group("/api")
	setupProductRoutes(api, d.Products, resp)
	setupSearchRoutes(api, d.Search)
	setupStudyRoutes(api, d.Catalogue, resp)
	setupScanRoutes(api, d.Scanner, resp)

	var limiter *rate.Limiter
	if cfg.WaitlistRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WaitlistRateLimit), max(cfg.WaitlistRateBurst, 1))
	}
	setupWaitlistRoutes(api, d.Waitlist, cfg.APISecretKey, limiter, resp)
	setupMyHomeRoutes(api)

	return router
}
