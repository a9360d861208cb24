package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// responder bündelt, was alle Routen für Fehlerantworten brauchen.
type responder struct {
	log        *zap.Logger
	production bool
}

// internalError loggt err und antwortet mit 500. Außerhalb von Produktion
// enthält die Antwort die Fehlermeldung unter "details".
func (h *responder) internalError(c *gin.Context, msg string, err error) {
	h.log.Error(msg,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("correlation_id", c.GetString(correlationIDKey)))
	body := gin.H{"error": msg}
	if !h.production {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
