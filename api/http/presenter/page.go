package presenter

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/roadmap/pkg/roadmap"
)

type pageData struct {
	Target  string
	Loading bool
	Error   string
	Roadmap *roadmap.Roadmap
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Learning Roadmap Generator</title>
    <style>
      body { margin: 0; min-height: 100vh; display: flex; flex-direction: column; background: #f3f4f6; color: #1f2937; font-family: ui-sans-serif, system-ui, sans-serif; }
      header, footer { background: #fff; box-shadow: 0 1px 2px rgba(0,0,0,0.06); padding: 16px; text-align: center; }
      footer { color: #4b5563; }
      main { flex-grow: 1; padding: 32px; }
      .card { max-width: 42rem; margin: 0 auto; background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); padding: 24px; }
      .card .card { box-shadow: none; border: 1px solid #e5e7eb; margin-top: 24px; padding: 16px; }
      .muted { color: #4b5563; text-align: center; }
      form .row { display: flex; gap: 8px; }
      form input { flex-grow: 1; padding: 8px; border: 1px solid #d1d5db; border-radius: 6px; }
      form button { background: #2563eb; color: #fff; border: 0; border-radius: 6px; padding: 8px 16px; min-width: 7rem; }
      form button:disabled { opacity: 0.6; }
      .spinner { display: inline-block; width: 1em; height: 1em; border: 2px solid #fff; border-right-color: transparent; border-radius: 50%; animation: spin 0.75s linear infinite; }
      @keyframes spin { to { transform: rotate(360deg); } }
      .error { margin-top: 16px; color: #dc2626; text-align: center; }
      li { margin-bottom: 8px; }
      a { color: #2563eb; }
    </style>
  </head>
  <body>
    <header><h1>Learning Roadmap Generator</h1></header>
    <main>
      <div class="card">
        <h2 style="text-align:center">Generate Your Learning Roadmap</h2>
        <p class="muted">Enter a technology to get a customized learning path</p>
        <form id="roadmap-form" method="post" action="/">
          <div class="row">
            <input type="text" name="target" placeholder="E.g., NextJS, React, Python" value="{{.Target}}" />
            <button type="submit" id="generate"{{if .Loading}} disabled aria-busy="true"{{end}}>
              {{if .Loading}}<span class="spinner"></span>{{else}}Generate{{end}}
            </button>
          </div>
        </form>
        {{with .Error}}<div class="error" role="alert">{{.}}</div>{{end}}
        {{with .Roadmap}}
        <section id="roadmap">
          <h2 style="text-align:center">Learning Roadmap for {{$.Target}}</h2>
          <div class="card">
            <h3>Prerequisites</h3>
            <ul>
              {{range .Prerequisites}}<li><strong>{{.Title}}:</strong> {{.Description}}</li>
              {{end}}
            </ul>
          </div>
          <div class="card">
            <h3>Learning Steps</h3>
            <ol>
              {{range .MainSteps}}<li><strong>{{.Title}}:</strong> {{.Description}}</li>
              {{end}}
            </ol>
          </div>
          <div class="card">
            <h3>Resources</h3>
            <ul>
              {{range .Resources}}<li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a></li>
              {{end}}
            </ul>
          </div>
        </section>
        {{end}}
      </div>
    </main>
    <footer><p>&copy; Learning Roadmap Generator. All rights reserved.</p></footer>
    <script>
      document.getElementById("roadmap-form").addEventListener("submit", function () {
        var btn = document.getElementById("generate");
        btn.disabled = true;
        btn.setAttribute("aria-busy", "true");
        btn.innerHTML = '<span class="spinner"></span>';
      });
    </script>
  </body>
</html>
`))

// RenderPage renders the HTML page for v.
func RenderPage(v View) ([]byte, error) {
	data := pageData{Target: v.Target(), Loading: v.Loading(), Error: v.ErrorText()}
	if rm, ok := v.Roadmap(); ok {
		data.Roadmap = &rm
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page renders v as the response body.
func Page(c *fiber.Ctx, status int, v View) error {
	body, err := RenderPage(v)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to render page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(body)
}
