// Copyright (c) 2026 Marquee. All rights reserved.

package venue_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/core/venue"
	"github.com/marquee-live/marquee/internal/web/flash"
	"github.com/marquee-live/marquee/internal/web/render"
)

// testRouter mounts the venue handler the way the server does, with an
// in-memory flash queue so flashes round-trip without Redis.
func testRouter(t *testing.T, repo venue.Repository) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	service := testService(repo)
	renderer, err := render.New(logger)
	require.NoError(t, err)

	flashes := flash.New(flash.NewMemoryQueue(), logger)
	handler := venue.NewHandler(service, renderer, flashes)

	router := chi.NewRouter()
	router.Route("/venues", handler.RegisterRoutes)
	return router
}

func postForm(router http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		request.AddCookie(c)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func validFormValues() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"phone":   {"123-123-1234"},
		"genres":  {"Jazz", "Blues"},
	}
}

/*
TestHandler_CreateRedirectsAndFlashes verifies the create flow end to end:
the POST redirects, and the next page render with the session cookie shows
the success flash exactly once.
*/
func TestHandler_CreateRedirectsAndFlashes(t *testing.T) {
	repo := newFakeRepo()
	router := testRouter(t, repo)

	recorder := postForm(router, "/venues/create", validFormValues(), nil)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
	require.Len(t, repo.venues, 1)

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	listRequest := httptest.NewRequest(http.MethodGet, "/venues", nil)
	for _, c := range cookies {
		listRequest.AddCookie(c)
	}
	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, listRequest)

	assert.Equal(t, http.StatusOK, listRecorder.Code)
	assert.Contains(t, listRecorder.Body.String(), "Venue The Musical Hop was successfully listed!")

	// Flash is one-shot: a second render must not repeat it.
	repeatRecorder := httptest.NewRecorder()
	router.ServeHTTP(repeatRecorder, listRequest)
	assert.NotContains(t, repeatRecorder.Body.String(), "successfully listed")
}

/*
TestHandler_CreateValidationRerenders verifies an invalid submission
re-renders the form with every failing field flashed.
*/
func TestHandler_CreateValidationRerenders(t *testing.T) {
	repo := newFakeRepo()
	router := testRouter(t, repo)

	form := validFormValues()
	form.Set("name", "")
	form.Set("state", "Texas")

	recorder := postForm(router, "/venues/create", form, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Please fix the following errors:")
	assert.Contains(t, body, "name: This field is required")
	assert.Contains(t, body, "state: Must be a valid US state")
	assert.Empty(t, repo.venues)
}

/*
TestHandler_DeleteReturnsNoContent verifies the delete endpoint responds
204 and queues the outcome flash for the next page.
*/
func TestHandler_DeleteReturnsNoContent(t *testing.T) {
	repo := newFakeRepo()
	router := testRouter(t, repo)

	v := venue.Venue{Name: "Hop", City: "Austin", State: "TX"}
	require.NoError(t, repo.Create(context.Background(), &v))

	request := httptest.NewRequest(http.MethodDelete, "/venues/"+strconv.Itoa(v.ID), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, repo.venues)
}

/*
TestHandler_GetUnknownIDRenders404 verifies both a missing id and a
non-numeric id produce the 404 page.
*/
func TestHandler_GetUnknownIDRenders404(t *testing.T) {
	router := testRouter(t, newFakeRepo())

	for _, path := range []string{"/venues/999", "/venues/not-a-number"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code, path)
	}
}
