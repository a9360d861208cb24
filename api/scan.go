package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"toxiscope/services"
)

// maxScanMemory ist der Anteil eines Multipart-Uploads, der im Speicher gehalten wird.
const maxScanMemory = 32 << 20

func setupScanRoutes(api *gin.RouterGroup, scanner *services.ScanService, resp *responder) {
	api.POST("/scan", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form data"})
			return
		}
		headers := form.File["files"]

		files := make([]services.ScanFile, 0, len(headers))
		for _, fh := range headers {
			files = append(files, services.ScanFile{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Open:        func() (io.ReadCloser, error) { return fh.Open() },
			})
		}

		result, err := scanner.Scan(c.Request.Context(), files)
		if errors.Is(err, services.ErrNoFiles) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}
		if err != nil {
			resp.internalError(c, "Failed to process scan", err)
			return
		}
		scansProcessed.Inc()
		c.JSON(http.StatusOK, result)
	})
}
