package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adhok/NASA-Data-Visualization-App/internal/imagecache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

// epicImageTimeout is how long proxied EPIC images stay cached. The
// archive is immutable, the TTL only bounds memory use.
const epicImageTimeout = time.Hour

// epicImage proxies one EPIC archive PNG through the byte cache.
//
// The archive URL requires the API key as a query parameter, so the pages
// can not link to it directly without exposing the key in the document.
// Proxying also keeps repeat views from burning rate limit quota on
// multi megabyte downloads.
func (s *Server) epicImage(c *gin.Context) {
	kind, err := nasa.ParseEpicCollection(c.Param("kind"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown collection")
		return
	}
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.String(http.StatusNotFound, "bad date")
		return
	}
	identifier, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok || identifier == "" {
		c.String(http.StatusNotFound, "bad image name")
		return
	}
	client := nasa.New(s.apiKey(c), s.httpClient)
	dat, err := s.images.Image(client.EpicImageURL(kind, identifier, date), epicImageTimeout)
	if err != nil {
		var httpErr imagecache.HTTPError
		if errors.As(err, &httpErr) {
			slog.Warn("epic image upstream error", "identifier", identifier, "status", httpErr.Status)
			c.String(httpErr.StatusCode, httpErr.Status)
			return
		}
		slog.Error("epic image fetch", "identifier", identifier, "error", err)
		c.String(http.StatusBadGateway, "image fetch failed")
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", dat)
}
