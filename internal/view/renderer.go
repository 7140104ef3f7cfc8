// Package view assembles the server-rendered markup: navigation bar,
// vehicle grids and details, search facets and the account/management
// forms. Pure formatting over domain records, no I/O.
package view

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
)

// Page is everything the layout needs to render a full document.
type Page struct {
	Title   string
	Nav     template.HTML
	Notices []string
	Errors  []string
	Account string // display name of the signed-in account, empty when anonymous
	Content template.HTML
}

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | Motorlot</title>
  <link rel="stylesheet" href="/css/styles.css">
</head>
<body>
  <header id="top-header">
    <a href="/" class="site-name">Motorlot</a>
    <div id="tools">
      {{if .Account}}<a href="/account/">Welcome {{.Account}}</a> <a href="/account/logout">Logout</a>{{else}}<a href="/account/login" title="Click to log in">My Account</a>{{end}}
    </div>
  </header>
  <nav>{{.Nav}}</nav>
  {{range .Notices}}<p class="notice">{{.}}</p>{{end}}
  {{range .Errors}}<p class="error">{{.}}</p>{{end}}
  <main>
    <h1>{{.Title}}</h1>
    {{.Content}}
  </main>
  <footer>
    <p>&copy; Motorlot</p>
  </footer>
</body>
</html>
`

// Renderer holds the parsed templates. Construct once and share; it is
// read-only after New.
type Renderer struct {
	layout    *template.Template
	fragments *template.Template
}

func New() (*Renderer, error) {
	layout, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, err
	}
	fragments, err := template.New("fragments").Funcs(template.FuncMap{
		"usd": FormatUSD,
	}).Parse(fragmentTemplates)
	if err != nil {
		return nil, err
	}
	return &Renderer{layout: layout, fragments: fragments}, nil
}

// Render writes the full document for a page.
func (r *Renderer) Render(w io.Writer, p Page) error {
	return r.layout.Execute(w, p)
}

// fragment executes a named fragment template into trusted HTML.
func (r *Renderer) fragment(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// FormatUSD renders a price as a dollar amount with thousands
// separators, e.g. 30000 -> "$30,000".
func FormatUSD(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	var buf bytes.Buffer
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	buf.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		buf.WriteByte(',')
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
