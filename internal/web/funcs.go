package web

import (
	"html/template"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adhok/NASA-Data-Visualization-App/internal/optional"
)

// templateFuncs returns the formatting helpers available to all templates.
func templateFuncs() template.FuncMap {
	titler := cases.Title(language.English)
	return template.FuncMap{
		// title cases a word for display, e.g. rover status "active".
		"title": titler.String,
		// comma groups an integer count: 1234 -> "1,234".
		"comma": func(v int) string {
			return humanize.Comma(int64(v))
		},
		// roundComma rounds to a whole number and groups it.
		"roundComma": func(v float64) string {
			return humanize.Comma(int64(math.Round(v)))
		},
		// thousandsKM converts km to rounded thousands of km.
		"thousandsKM": func(v float64) string {
			return humanize.Comma(int64(math.Round(v / 1000)))
		},
		"f0": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 0, 64)
		},
		"f2": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
		"f4": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 4, 64)
		},
		// opt renders an optional measurement, empty values as a dash.
		"opt": func(o optional.Optional[float64], decimals int) string {
			return optional.FormatFloat(o, decimals, "-")
		},
		"yesno": func(v bool) string {
			if v {
				return "Yes"
			}
			return "No"
		},
	}
}
