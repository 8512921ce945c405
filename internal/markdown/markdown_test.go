package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhok/NASA-Data-Visualization-App/internal/markdown"
)

func TestToHTML(t *testing.T) {
	t.Run("can render headings and links", func(t *testing.T) {
		// when
		got, err := markdown.ToHTML([]byte("# Title\n\nSee [NASA](https://api.nasa.gov)."))
		// then
		if assert.NoError(t, err) {
			assert.Contains(t, string(got), "<h1>Title</h1>")
			assert.Contains(t, string(got), `href="https://api.nasa.gov"`)
		}
	})
	t.Run("should strip script tags", func(t *testing.T) {
		// when
		got, err := markdown.ToHTML([]byte("hello <script>alert(1)</script> world"))
		// then
		if assert.NoError(t, err) {
			assert.NotContains(t, string(got), "<script>")
		}
	})
	t.Run("can render an empty document", func(t *testing.T) {
		// when
		got, err := markdown.ToHTML(nil)
		// then
		if assert.NoError(t, err) {
			assert.Equal(t, "", string(got))
		}
	})
}
