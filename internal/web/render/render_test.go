// Copyright (c) 2026 Marquee. All rights reserved.

package render_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/platform/apperr"
	"github.com/marquee-live/marquee/internal/web/render"
)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	renderer, err := render.New(logger)
	require.NoError(t, err)
	return renderer
}

/*
TestRenderer_HTMLRendersFlashes verifies a page renders with the given
status, content type, and its flash messages in the body.
*/
func TestRenderer_HTMLRendersFlashes(t *testing.T) {
	renderer := testRenderer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	renderer.HTML(recorder, request, http.StatusOK, "home", render.Page{
		Title:   "Marquee",
		Flashes: []string{"Venue The Musical Hop was successfully listed!"},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, recorder.Body.String(), "Venue The Musical Hop was successfully listed!")
}

/*
TestRenderer_ErrorNotFound verifies a NotFound error renders the 404 page.
*/
func TestRenderer_ErrorNotFound(t *testing.T) {
	renderer := testRenderer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/venues/999", nil)

	renderer.Error(recorder, request, apperr.NotFound("Venue"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "404")
}

/*
TestRenderer_ErrorInternal verifies any other error renders the 500 page
without leaking the cause.
*/
func TestRenderer_ErrorInternal(t *testing.T) {
	renderer := testRenderer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/venues", nil)

	renderer.Error(recorder, request, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Something went wrong")
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}
