// Package views renders the server-side pages from templates embedded in
// the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names.
const (
	Home             = "home"
	Login            = "login"
	Register         = "register"
	AccessDenied     = "access_denied"
	NotFound         = "not_found"
	CompaniesIndex   = "companies_index"
	CompaniesDetails = "companies_details"
	CompaniesCreate  = "companies_create"
	CompaniesEdit    = "companies_edit"
	CompaniesDelete  = "companies_delete"
)

// Partial names.
const (
	LLMsPartial     = "llms_partial"
	ChatbotsPartial = "chatbots_partial"
)

var pages = []string{
	Home, Login, Register, AccessDenied, NotFound,
	CompaniesIndex, CompaniesDetails, CompaniesCreate, CompaniesEdit, CompaniesDelete,
}

var partials = []string{LLMsPartial, ChatbotsPartial}

// Data is passed to every page template.
type Data struct {
	Title     string
	User      *session.Claims
	ReturnURL string

	// Error is a form level message, Errors holds per-field messages.
	Error  string
	Errors map[string]string

	Form      any
	Company   *models.Company
	Companies []models.Company
}

// Renderer executes page and partial templates.
type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// New parses every embedded template.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages)+len(partials))}

	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.templates[name] = t
	}

	for _, name := range partials {
		t, err := template.New(name+".html").Funcs(funcs).ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render writes the named template with the given status. The template is
// executed into a buffer first so a failure never leaves half a page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
