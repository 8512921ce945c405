package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/adhok/NASA-Data-Visualization-App/internal/dataset"
	"github.com/adhok/NASA-Data-Visualization-App/internal/optional"
	"github.com/adhok/NASA-Data-Visualization-App/internal/xslices"
)

const (
	chartWidth  = 960
	chartHeight = 420
)

// renderSVG renders a configured chart into markup that can be embedded
// directly into a page.
func renderSVG(graph chart.Chart) (template.HTML, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// chartable reports whether the points span a drawable range on both axes.
// A degenerate range cannot be scaled to the canvas and would fail to render.
func chartable(xs, ys []float64) bool {
	return spread(xs) && spread(ys)
}

func spread(vs []float64) bool {
	if len(vs) < 2 {
		return false
	}
	for _, v := range vs[1:] {
		if v != vs[0] {
			return true
		}
	}
	return false
}

// neoScatterSVG plots miss distance against average estimated diameter,
// with potentially hazardous objects in red.
//
// It returns empty markup when the records cannot fill a chart, which the
// page treats as "no chart", not as an error.
func neoScatterSVG(records []dataset.NeoRecord) (template.HTML, error) {
	xs := xslices.Map(records, func(r dataset.NeoRecord) float64 { return r.MissDistanceKM })
	ys := xslices.Map(records, func(r dataset.NeoRecord) float64 { return r.AvgDiameterKM })
	if !chartable(xs, ys) {
		return "", nil
	}
	safe := xslices.Filter(records, func(r dataset.NeoRecord) bool { return !r.Hazardous })
	hazardous := dataset.FilterHazardous(records)
	var series []chart.Series
	if len(safe) > 0 {
		series = append(series, neoSeries("Not hazardous", chart.ColorBlue, safe))
	}
	if len(hazardous) > 0 {
		series = append(series, neoSeries("Potentially hazardous", chart.ColorRed, hazardous))
	}
	graph := chart.Chart{
		Title:  "NEO Size vs. Miss Distance",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:           "Miss Distance (km)",
			ValueFormatter: kmFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Average Diameter (km)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return renderSVG(graph)
}

func neoSeries(name string, color drawing.Color, records []dataset.NeoRecord) chart.Series {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    6,
			DotColor:    color,
		},
		XValues: xslices.Map(records, func(r dataset.NeoRecord) float64 { return r.MissDistanceKM }),
		YValues: xslices.Map(records, func(r dataset.NeoRecord) float64 { return r.AvgDiameterKM }),
	}
}

func kmFormatter(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return humanize.CommafWithDigits(f, 0)
}

// A measurement describes one line of a weather chart.
type measurement struct {
	name  string
	color drawing.Color
	value func(dataset.WeatherRecord) optional.Optional[float64]
}

// temperatureSVG charts the min, avg and max air temperature by sol.
func temperatureSVG(records []dataset.WeatherRecord) (template.HTML, error) {
	return weatherLineSVG("Temperature Range by Sol", "Temperature (°C)", records, []measurement{
		{"Min Temp (°C)", chart.ColorBlue, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.TempMinC }},
		{"Avg Temp (°C)", chart.ColorGreen, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.TempAvgC }},
		{"Max Temp (°C)", chart.ColorRed, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.TempMaxC }},
	})
}

// pressureSVG charts the average atmospheric pressure by sol.
func pressureSVG(records []dataset.WeatherRecord) (template.HTML, error) {
	return weatherLineSVG("Average Atmospheric Pressure by Sol", "Pressure (Pa)", records, []measurement{
		{"Avg Pressure (Pa)", chart.ColorBlue, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.PressureAvgPa }},
	})
}

// windSVG charts the average and max wind speed by sol.
func windSVG(records []dataset.WeatherRecord) (template.HTML, error) {
	return weatherLineSVG("Wind Speed by Sol", "Wind Speed (m/s)", records, []measurement{
		{"Avg Wind Speed (m/s)", chart.ColorBlue, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.WindAvgMS }},
		{"Max Wind Speed (m/s)", chart.ColorOrange, func(r dataset.WeatherRecord) optional.Optional[float64] { return r.WindMaxMS }},
	})
}

// weatherLineSVG draws one line per measurement over the sol axis.
// Sols where a sensor did not report are left out of that line only.
func weatherLineSVG(title, yName string, records []dataset.WeatherRecord, measurements []measurement) (template.HTML, error) {
	var series []chart.Series
	var allX, allY []float64
	for _, m := range measurements {
		xs, ys := solSeries(records, m.value)
		if len(xs) == 0 {
			continue
		}
		allX = append(allX, xs...)
		allY = append(allY, ys...)
		series = append(series, chart.ContinuousSeries{
			Name: m.name,
			Style: chart.Style{
				StrokeColor: m.color,
				StrokeWidth: 2,
				DotColor:    m.color,
				DotWidth:    3,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 || !chartable(allX, allY) {
		return "", nil
	}
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name: "Sol",
		},
		YAxis: chart.YAxis{
			Name: yName,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return renderSVG(graph)
}

func solSeries(records []dataset.WeatherRecord, value func(dataset.WeatherRecord) optional.Optional[float64]) ([]float64, []float64) {
	var xs, ys []float64
	for _, r := range records {
		v, err := value(r).Value()
		if err != nil {
			continue
		}
		xs = append(xs, float64(r.Sol))
		ys = append(ys, v)
	}
	return xs, ys
}
