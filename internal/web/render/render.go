// Copyright (c) 2026 Marquee. All rights reserved.

/*
Package render provides HTML page rendering for all web handlers.

# Architecture

This package centralizes the presentation boundary. Every page (content or
error) goes through the same embedded template set, so handlers never touch
html/template directly and every response carries the shared layout, the
flash messages, and a correct status code.
*/
package render

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/marquee-live/marquee/internal/platform/apperr"
	"github.com/marquee-live/marquee/internal/platform/ctxutil"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Page is the data envelope handed to every template.
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// Renderer holds the parsed template set.
//
// It is constructed once at startup; template parse errors fail fast there
// instead of surfacing per request.
type Renderer struct {
	templates *template.Template
	log       *slog.Logger
}

// New parses the embedded templates and returns a ready Renderer.
func New(logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime": formatDatetime,
		"contains": containsString,
		"states":   func() []string { return usStates },
		"genres":   func() []string { return genreOptions },
	}

	templates, err := template.New("marquee").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: templates, log: logger}, nil
}

// HTML executes the named page template with the given status code.
//
// The page is rendered to a buffer first so a template fault becomes a clean
// 500 instead of a torn response.
func (renderer *Renderer) HTML(writer http.ResponseWriter, request *http.Request, status int, name string, page Page) {
	var buf bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buf, name, page); err != nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "template_render_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		// Plain fallback; re-entering the template set here could recurse.
		http.Error(writer, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buf.WriteTo(writer)
}

// Error converts any Go error into the matching error page.
//
// NotFound errors become the 404 page; everything else becomes the 500 page.
// Internal causes are logged server-side and never rendered to the user.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "page_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	if appError.HTTPStatus == http.StatusNotFound {
		renderer.HTML(writer, request, http.StatusNotFound, "404", Page{Title: "Not Found"})
		return
	}

	renderer.HTML(writer, request, appError.HTTPStatus, "500", Page{Title: "Something Went Wrong"})
}

// NotFoundPage renders the 404 page; wired as the router's NotFound handler.
func (renderer *Renderer) NotFoundPage(writer http.ResponseWriter, request *http.Request) {
	renderer.HTML(writer, request, http.StatusNotFound, "404", Page{Title: "Not Found"})
}

// ServerErrorPage renders the 500 page; wired into panic recovery.
func (renderer *Renderer) ServerErrorPage(writer http.ResponseWriter, request *http.Request) {
	renderer.HTML(writer, request, http.StatusInternalServerError, "500", Page{Title: "Something Went Wrong"})
}

// formatDatetime renders timestamps the way the show listings display them.
func formatDatetime(t time.Time) string {
	return t.Format("Mon Jan 2, 2006 at 3:04 PM")
}

// containsString marks multi-select options as selected on edit forms.
func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// usStates feeds the state dropdowns, matching the codes the validator accepts.
var usStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN",
	"MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// genreOptions feeds the genre multi-selects.
var genreOptions = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}
