package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

// The JSON API exposes the same normalized records the pages render.
// Callers supply the api_key through the session cookie like the pages do.

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.version})
}

// apiError reports an upstream failure. Upstream HTTP status codes pass
// through so API clients can tell a rate limit from an outage.
func (s *Server) apiError(c *gin.Context, err error) {
	slog.Error("api request", "path", c.Request.URL.Path, "error", err)
	status := http.StatusBadGateway
	var apiErr nasa.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) apiPhotos(c *gin.Context) {
	rover, ok := dataset.FindRover(c.DefaultQuery("rover", "Curiosity"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown rover: " + c.Query("rover")})
		return
	}
	date := dateQuery(c, "date", time.Now().UTC().AddDate(0, 0, -7))
	photos, err := s.explorer(c).MarsPhotos(c.Request.Context(), rover.Name, date)
	if err != nil {
		s.apiError(c, err)
		return
	}
	photos = dataset.FilterByCamera(photos, c.DefaultQuery("camera", dataset.CameraAll))
	c.JSON(http.StatusOK, gin.H{
		"rover":  rover.Name,
		"date":   date.Format(dateLayout),
		"count":  len(photos),
		"photos": photos,
	})
}

func (s *Server) apiNeo(c *gin.Context) {
	now := time.Now().UTC()
	start := dateQuery(c, "start_date", now.AddDate(0, 0, -7))
	end, clamped := dataset.ClampNeoRange(start, dateQuery(c, "end_date", now))
	records, err := s.explorer(c).NeoFeed(c.Request.Context(), start, end)
	if err != nil {
		s.apiError(c, err)
		return
	}
	if c.Query("hazardous") == "1" {
		records = dataset.FilterHazardous(records)
	}
	c.JSON(http.StatusOK, gin.H{
		"start_date": start.Format(dateLayout),
		"end_date":   end.Format(dateLayout),
		"clamped":    clamped,
		"count":      len(records),
		"objects":    records,
	})
}

func (s *Server) apiWeather(c *gin.Context) {
	result := s.explorer(c).Weather(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"degraded": result.Degraded,
		"count":    len(result.Records),
		"records":  result.Records,
	})
}

func (s *Server) apiEpic(c *gin.Context) {
	kind, err := nasa.ParseEpicCollection(c.DefaultQuery("kind", string(nasa.EpicNatural)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := dateQuery(c, "date", time.Now().UTC().AddDate(0, 0, -2))
	records, err := s.explorer(c).EpicImages(c.Request.Context(), kind, date, proxyImageURL(kind))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":   date.Format(dateLayout),
		"kind":   kind,
		"count":  len(records),
		"images": records,
	})
}
