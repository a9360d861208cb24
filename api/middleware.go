package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const correlationIDKey = "correlation_id"

// correlationID übernimmt X-Correlation-ID oder vergibt eine neue UUID.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Correlation-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(correlationIDKey, id)
		c.Header("X-Correlation-ID", id)
		c.Next()
	}
}

// requestLogger schreibt pro Request eine strukturierte Zeile.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("correlation_id", c.GetString(correlationIDKey)),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// recovery wandelt Panics in die übliche 500-Antwort.
func recovery(log *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic im Handler",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("correlation_id", c.GetString(correlationIDKey)),
					zap.Stack("stack"))
				body := gin.H{"error": "Internal server error"}
				if !production {
					body["details"] = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-API-KEY", "X-Correlation-ID"},
		ExposeHeaders:    []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// apiKeyAuth prüft X-API-KEY, falls ein Schlüssel konfiguriert ist.
func apiKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-KEY") != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

// rateLimit begrenzt eine Route über einen gemeinsamen Token-Bucket.
func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
