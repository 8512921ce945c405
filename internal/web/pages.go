package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/github"
	"github.com/adhok/NASA-Data-Visualization-App/internal/nasa"
	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

// Page holds the fields every page needs for the shared chrome:
// navigation, API key form and footer.
type Page struct {
	Title        string
	Active       string
	APIKeyMasked string
	UsingDemoKey bool
	Version      string
	Update       *github.VersionInfo
}

// newPage builds the shared chrome for a request.
func (s *Server) newPage(c *gin.Context, title, active string) Page {
	key := s.apiKey(c)
	return Page{
		Title:        title,
		Active:       active,
		APIKeyMasked: maskKey(key),
		UsingDemoKey: key == nasa.DemoKey,
		Version:      s.version,
		Update:       s.updateHint.Load(),
	}
}

// maskKey hides all but the last characters of an API key for display.
// The shared demo key is public and shown as is.
func maskKey(key string) string {
	if key == nasa.DemoKey {
		return key
	}
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return "…" + key[len(key)-4:]
}

// fetchErrMessage converts an upstream failure into the message shown
// in a page's error box.
func fetchErrMessage(err error) string {
	var apiErr nasa.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "Could not reach the NASA API. Check your connection and try again."
}

func (s *Server) homePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home", s.newPage(c, "NASA Data Explorer", "home"))
}

type photosPage struct {
	Page
	Rovers   []dataset.RoverMission
	Rover    dataset.RoverMission
	Date     string
	Cameras  []string
	Camera   string
	Photos   []dataset.PhotoRecord
	Rows     [][]dataset.PhotoRecord
	FetchErr string
}

func (s *Server) photosPage(c *gin.Context) {
	rover, ok := dataset.FindRover(c.DefaultQuery("rover", "Curiosity"))
	if !ok {
		rover, _ = dataset.FindRover("Curiosity")
	}
	date := dateQuery(c, "date", time.Now().UTC().AddDate(0, 0, -7))
	page := photosPage{
		Page:   s.newPage(c, "Mars Rover Photos", "photos"),
		Rovers: dataset.Rovers(),
		Rover:  rover,
		Date:   date.Format(dateLayout),
		Camera: c.DefaultQuery("camera", dataset.CameraAll),
	}
	photos, err := s.explorer(c).MarsPhotos(c.Request.Context(), rover.Name, date)
	if err != nil {
		slog.Error("photos page", "error", err)
		page.FetchErr = fetchErrMessage(err)
		c.HTML(http.StatusOK, "photos", page)
		return
	}
	page.Cameras = dataset.CameraNames(photos)
	page.Photos = dataset.FilterByCamera(photos, page.Camera)
	page.Rows = xslices.Chunk(page.Photos, gridColumns)
	c.HTML(http.StatusOK, "photos", page)
}

type neoPage struct {
	Page
	StartDate     string
	EndDate       string
	Clamped       bool
	HazardousOnly bool
	MinSize       float64
	MaxSize       float64
	SizeLimit     float64
	Total         int
	Records       []dataset.NeoRecord
	Chart         template.HTML
	FetchErr      string
}

func (s *Server) neoPage(c *gin.Context) {
	now := time.Now().UTC()
	start := dateQuery(c, "start_date", now.AddDate(0, 0, -7))
	end, clamped := dataset.ClampNeoRange(start, dateQuery(c, "end_date", now))
	page := neoPage{
		Page:          s.newPage(c, "Near Earth Objects", "neo"),
		StartDate:     start.Format(dateLayout),
		EndDate:       end.Format(dateLayout),
		Clamped:       clamped,
		HazardousOnly: c.Query("hazardous") == "1",
	}
	records, err := s.explorer(c).NeoFeed(c.Request.Context(), start, end)
	if err != nil {
		slog.Error("neo page", "error", err)
		page.FetchErr = fetchErrMessage(err)
		c.HTML(http.StatusOK, "neo", page)
		return
	}
	page.Total = len(records)
	if page.HazardousOnly {
		records = dataset.FilterHazardous(records)
	}
	// The size bound comes from the records before the size filter,
	// so narrowing the range does not shrink its own bound.
	page.SizeLimit = dataset.MaxDiameterKM(records) + 0.5
	page.MinSize = floatQuery(c, "min_size", 0)
	page.MaxSize = floatQuery(c, "max_size", page.SizeLimit)
	page.Records = dataset.FilterBySize(records, page.MinSize, page.MaxSize)
	chartSVG, err := neoScatterSVG(page.Records)
	if err != nil {
		slog.Warn("neo chart skipped", "error", err)
	}
	page.Chart = chartSVG
	c.HTML(http.StatusOK, "neo", page)
}

type weatherPage struct {
	Page
	Records       []dataset.WeatherRecord
	Degraded      bool
	TempChart     template.HTML
	PressureChart template.HTML
	WindChart     template.HTML
	Facts         []dataset.PlanetFact
}

func (s *Server) weatherPage(c *gin.Context) {
	result := s.explorer(c).Weather(c.Request.Context())
	page := weatherPage{
		Page:     s.newPage(c, "Mars Weather", "weather"),
		Records:  result.Records,
		Degraded: result.Degraded,
		Facts:    dataset.PlanetFacts(),
	}
	var err error
	if page.TempChart, err = temperatureSVG(result.Records); err != nil {
		slog.Warn("temperature chart skipped", "error", err)
	}
	if page.PressureChart, err = pressureSVG(result.Records); err != nil {
		slog.Warn("pressure chart skipped", "error", err)
	}
	if page.WindChart, err = windSVG(result.Records); err != nil {
		slog.Warn("wind chart skipped", "error", err)
	}
	c.HTML(http.StatusOK, "weather", page)
}

type epicPage struct {
	Page
	Date     string
	Kind     string
	Index    int
	MaxIndex int
	ShowAll  bool
	Selected *dataset.EpicImageRecord
	Records  []dataset.EpicImageRecord
	Rows     [][]dataset.EpicImageRecord
	FetchErr string
}

func (s *Server) epicPage(c *gin.Context) {
	kind, err := nasa.ParseEpicCollection(c.DefaultQuery("kind", string(nasa.EpicNatural)))
	if err != nil {
		kind = nasa.EpicNatural
	}
	date := dateQuery(c, "date", time.Now().UTC().AddDate(0, 0, -2))
	page := epicPage{
		Page:    s.newPage(c, "Earth Imagery (EPIC)", "epic"),
		Date:    date.Format(dateLayout),
		Kind:    string(kind),
		ShowAll: c.Query("all") == "1",
	}
	records, err := s.explorer(c).EpicImages(c.Request.Context(), kind, date, proxyImageURL(kind))
	if err != nil {
		slog.Error("epic page", "error", err)
		page.FetchErr = fetchErrMessage(err)
		c.HTML(http.StatusOK, "epic", page)
		return
	}
	page.Records = records
	if len(records) > 0 {
		idx := min(max(intQuery(c, "index", 0), 0), len(records)-1)
		page.Index = idx
		page.MaxIndex = len(records) - 1
		page.Selected = &records[idx]
		if page.ShowAll {
			page.Rows = xslices.Chunk(records, gridColumns)
		}
	}
	c.HTML(http.StatusOK, "epic", page)
}

// proxyImageURL returns the builder that points image records at this
// server's caching proxy instead of the upstream archive. The URL carries
// the image's own capture date, which can differ from the requested date.
func proxyImageURL(kind nasa.EpicCollection) func(nasa.EpicImage) string {
	return func(img nasa.EpicImage) string {
		return fmt.Sprintf("/epic/image/%s/%s/%s.png", kind, img.Date.Format(dateLayout), img.Identifier)
	}
}

type aboutPage struct {
	Page
	Content template.HTML
}

func (s *Server) aboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about", aboutPage{
		Page:    s.newPage(c, "About", "about"),
		Content: s.about,
	})
}

// submitAPIKey stores the session's NASA API key in a cookie and returns
// to the page the form was submitted from. An empty submission clears the
// key, falling back to DEMO_KEY.
func (s *Server) submitAPIKey(c *gin.Context) {
	key := strings.TrimSpace(c.PostForm("api_key"))
	if key == "" || key == nasa.DemoKey {
		c.SetCookie(apiKeyCookie, "", -1, "/", "", false, true)
	} else {
		c.SetCookie(apiKeyCookie, key, apiKeyCookieMaxAge, "/", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, referrerPath(c))
}

// referrerPath returns the local path the request came from, or the
// overview page. Only path and query survive, a referrer can not redirect
// off site.
func referrerPath(c *gin.Context) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "/"
	}
	target := url.URL{Path: u.Path, RawQuery: u.RawQuery}
	return target.String()
}

func dateQuery(c *gin.Context, name string, fallback time.Time) time.Time {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return fallback
	}
	return t
}

func floatQuery(c *gin.Context, name string, fallback float64) float64 {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
