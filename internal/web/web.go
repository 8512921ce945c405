// Package web serves the browser dashboard and its JSON API.
//
// Handlers are synchronous: a request runs its fetch, normalize and render
// steps in order and shares nothing with other requests except the response
// cache. The NASA API key travels with the browser session as a cookie, so
// every request builds its own short lived explorer around that key.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/adhok/NASA-Data-Visualization-App/internal/cache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/explorer"
	"github.com/adhok/NASA-Data-Visualization-App/internal/github"
	"github.com/adhok/NASA-Data-Visualization-App/internal/imagecache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/markdown"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
)

const (
	// apiKeyCookie carries the NASA API key of a browser session.
	apiKeyCookie = "nasa_api_key"

	// apiKeyCookieMaxAge is how long a submitted key is remembered.
	apiKeyCookieMaxAge = 30 * 24 * 60 * 60

	dateLayout = "2006-01-02"

	// gridColumns is the column count of the photo and EPIC image grids.
	gridColumns = 3
)

// Server is the HTTP front end of the dashboard.
type Server struct {
	engine     *gin.Engine
	httpClient *http.Client
	cache      *cache.Cache
	images     *imagecache.ImageCache
	about      template.HTML
	version    string
	updateHint atomic.Pointer[github.VersionInfo]
}

// New returns a new Server rendering the given assets.
//
// assets must hold the templates, static and content directories.
// httpClient is used for all upstream requests. When no httpClient (nil)
// is provided it will use the default client. memCache backs both the
// dataset pipelines and the image proxy.
func New(assets fs.FS, httpClient *http.Client, memCache *cache.Cache, version string, debug bool) (*Server, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	s := &Server{
		httpClient: httpClient,
		cache:      memCache,
		images:     imagecache.New(byteCache{memCache}, httpClient),
		version:    version,
	}
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	aboutSrc, err := fs.ReadFile(assets, "content/about.md")
	if err != nil {
		return nil, fmt.Errorf("read about page: %w", err)
	}
	s.about, err = markdown.ToHTML(aboutSrc)
	if err != nil {
		return nil, fmt.Errorf("render about page: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	e := gin.New()
	e.Use(gin.Recovery(), requestLogger())
	e.SetHTMLTemplate(tmpl)
	e.StaticFS("/static", http.FS(static))

	e.GET("/", s.homePage)
	e.GET("/photos", s.photosPage)
	e.GET("/neo", s.neoPage)
	e.GET("/weather", s.weatherPage)
	e.GET("/epic", s.epicPage)
	e.GET("/epic/image/:kind/:date/:file", s.epicImage)
	e.GET("/about", s.aboutPage)
	e.POST("/apikey", s.submitAPIKey)
	e.GET("/healthz", s.healthz)

	v1 := e.Group("/api/v1")
	v1.GET("/photos", s.apiPhotos)
	v1.GET("/neo", s.apiNeo)
	v1.GET("/weather", s.apiWeather)
	v1.GET("/epic", s.apiEpic)

	s.engine = e
	return s, nil
}

// Handler returns the root handler for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// SetUpdateHint publishes the result of a release check to page footers.
func (s *Server) SetUpdateHint(v github.VersionInfo) {
	s.updateHint.Store(&v)
}

// explorer returns a dataset service bound to the request's API key.
// The service is cheap to build and the shared cache keys include the key,
// so per request construction never mixes sessions.
func (s *Server) explorer(c *gin.Context) *explorer.Service {
	return explorer.New(nasa.New(s.apiKey(c), s.httpClient), s.cache)
}

// apiKey resolves the NASA API key of a request, falling back to DEMO_KEY.
func (s *Server) apiKey(c *gin.Context) string {
	if v, err := c.Cookie(apiKeyCookie); err == nil && v != "" {
		return v
	}
	return nasa.DemoKey
}
