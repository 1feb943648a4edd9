package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v View) string {
	t.Helper()
	b, err := RenderPage(v)
	require.NoError(t, err)
	return string(b)
}

func TestRenderPage_Idle(t *testing.T) {
	html := render(t, Idle())
	assert.Contains(t, html, "Generate Your Learning Roadmap")
	assert.Contains(t, html, ">\n              Generate\n")
	assert.NotContains(t, html, `id="generate" disabled`)
	assert.NotContains(t, html, `role="alert"`)
	assert.NotContains(t, html, `id="roadmap"`)
}

func TestRenderPage_Loading(t *testing.T) {
	html := render(t, Loading("React"))
	assert.Contains(t, html, `id="generate" disabled aria-busy="true"`)
	assert.Contains(t, html, `value="React"`)
	assert.NotContains(t, html, `id="roadmap"`)
}

func TestRenderPage_Error(t *testing.T) {
	html := render(t, Failed("React", "Failed to generate roadmap: <boom>"))
	assert.Contains(t, html, `<div class="error" role="alert">Failed to generate roadmap: &lt;boom&gt;</div>`)
	assert.NotContains(t, html, `id="roadmap"`)
}

func TestRenderPage_Result(t *testing.T) {
	html := render(t, Succeeded("React", sampleRoadmap()))

	pre := strings.Index(html, "<h3>Prerequisites</h3>")
	steps := strings.Index(html, "<h3>Learning Steps</h3>")
	res := strings.Index(html, "<h3>Resources</h3>")
	require.True(t, pre > 0 && steps > pre && res > steps, "groups out of order")

	assert.Contains(t, html, "Learning Roadmap for React")
	assert.Contains(t, html, "<li><strong>Pre 1:</strong> p</li>")
	assert.Contains(t, html, "<ol>")
	assert.Contains(t, html, "<li><strong>Step 5:</strong> s</li>")
	assert.Contains(t, html, `<a href="https://example.com/3" target="_blank" rel="noopener noreferrer">Link 3</a>`)
	assert.Equal(t, 10, strings.Count(html, "<li><strong>"))
	assert.NotContains(t, html, `role="alert"`)
}
