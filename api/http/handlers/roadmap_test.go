package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/artem13815/roadmap/api/http"
	"github.com/artem13815/roadmap/api/http/handlers"
	"github.com/artem13815/roadmap/api/http/presenter"
	"github.com/artem13815/roadmap/pkg/health"
	"github.com/artem13815/roadmap/pkg/health/checkers"
	"github.com/artem13815/roadmap/pkg/llm"
	"github.com/artem13815/roadmap/pkg/roadmap"
)

func roadmapJSON(t *testing.T, pre, main, res int) string {
	t.Helper()
	var rm roadmap.Roadmap
	for i := 0; i < pre; i++ {
		rm.Prerequisites = append(rm.Prerequisites, roadmap.Step{Title: fmt.Sprintf("Pre %d", i+1), Description: "d"})
	}
	for i := 0; i < main; i++ {
		rm.MainSteps = append(rm.MainSteps, roadmap.Step{Title: fmt.Sprintf("Step %d", i+1), Description: "d"})
	}
	for i := 0; i < res; i++ {
		rm.Resources = append(rm.Resources, roadmap.Resource{Title: fmt.Sprintf("Res %d", i+1), URL: "https://example.com"})
	}
	b, err := json.Marshal(rm)
	require.NoError(t, err)
	return string(b)
}

func newApp(model llm.Completer) *fiber.App {
	app := fiber.New()
	hh := handlers.NewHealthHandler(health.NewService(checkers.NewCompletionChecker("http://upstream/v1/chat/completions", "llama")))
	rh := handlers.NewRoadmapHandler(roadmap.NewService(model), nil)
	api.Register(app, hh, rh)
	return app
}

func staticModel(content string, err error) llm.Completer {
	return llm.CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		return content, err
	})
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func postForm(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	form := url.Values{"target": {target}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestGenerate_OK(t *testing.T) {
	app := newApp(staticModel("```json\n"+roadmapJSON(t, 5, 5, 3)+"\n```", nil))

	resp, body := postJSON(t, app, "/api/v1/roadmap", `{"target":"React"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out struct {
		Target  string          `json:"target"`
		Roadmap roadmap.Roadmap `json:"roadmap"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "React", out.Target)
	assert.Len(t, out.Roadmap.Prerequisites, 5)
	assert.Len(t, out.Roadmap.MainSteps, 5)
	assert.Len(t, out.Roadmap.Resources, 3)
}

func TestGenerate_ErrorKinds(t *testing.T) {
	cases := []struct {
		name  string
		model llm.Completer
		kind  string
	}{
		{"request", staticModel("", errors.New("connection reset")), roadmap.KindRequest},
		{"parse", staticModel("not json", nil), roadmap.KindParse},
		{"schema", staticModel(roadmapJSON(t, 5, 5, 2), nil), roadmap.KindSchema},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := postJSON(t, newApp(tc.model), "/api/v1/roadmap", `{"target":"React"}`)
			assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

			var out presenter.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tc.kind, out.Kind)
			assert.True(t, strings.HasPrefix(out.Message, "Failed to generate roadmap: "), out.Message)
		})
	}
}

func TestGenerate_BadRequest(t *testing.T) {
	var calls atomic.Int32
	app := newApp(llm.CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		calls.Add(1)
		return "", nil
	}))

	for _, body := range []string{`{"target":"   "}`, `{}`, `{"target":"` + strings.Repeat("x", 201) + `"}`, `{bad`} {
		resp, _ := postJSON(t, app, "/api/v1/roadmap", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Zero(t, calls.Load())
}

func TestPage_Idle(t *testing.T) {
	app := newApp(staticModel("", nil))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), `name="target"`)
}

func TestSubmit_RendersResult(t *testing.T) {
	app := newApp(staticModel(roadmapJSON(t, 5, 5, 3), nil))

	resp, html := postForm(t, app, "React")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Learning Roadmap for React")
	assert.Contains(t, html, "<h3>Learning Steps</h3>")
	assert.NotContains(t, html, `role="alert"`)
}

func TestSubmit_RendersError(t *testing.T) {
	app := newApp(staticModel("", errors.New("no route to host")))

	resp, html := postForm(t, app, "React")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, `role="alert">Failed to generate roadmap`)
	assert.NotContains(t, html, `id="roadmap"`)
	assert.NotContains(t, html, `id="generate" disabled`)
}

func TestSubmit_EmptyTarget(t *testing.T) {
	app := newApp(staticModel(roadmapJSON(t, 5, 5, 3), nil))

	_, html := postForm(t, app, "  ")
	assert.Contains(t, html, "target is required")
	assert.NotContains(t, html, `id="roadmap"`)
}

func TestHealthEndpoints(t *testing.T) {
	app := newApp(staticModel("", nil))
	for _, path := range []string{"/api/v1/health", "/api/v1/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestReady_NamesFailingChecker(t *testing.T) {
	app := fiber.New()
	hh := handlers.NewHealthHandler(health.NewService(checkers.NewCompletionChecker("http://upstream/v1/chat/completions", "")))
	api.Register(app, hh, handlers.NewRoadmapHandler(roadmap.NewService(staticModel("", nil)), nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "llm", body["checker"])
	assert.Equal(t, "model is not configured", body["details"])
}
