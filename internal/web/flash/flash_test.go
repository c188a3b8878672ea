// Copyright (c) 2026 Marquee. All rights reserved.

package flash_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/platform/constants"
	"github.com/marquee-live/marquee/internal/web/flash"
)

func testStore() *flash.Store {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return flash.New(flash.NewMemoryQueue(), logger)
}

/*
TestFlash_AddSetsCookie verifies that the first Add mints the session cookie.
*/
func TestFlash_AddSetsCookie(t *testing.T) {
	store := testStore()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/venues/create", nil)

	store.Add(recorder, request, "Venue The Musical Hop was successfully listed!")

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.FlashCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

/*
TestFlash_ConsumeOnce verifies queue order and read-once semantics.
*/
func TestFlash_ConsumeOnce(t *testing.T) {
	store := testStore()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/venues/create", nil)
	request.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "session-1"})

	store.Add(recorder, request, "first")
	store.Add(recorder, request, "second")

	// Next page load consumes both, in order.
	next := httptest.NewRequest("GET", "/", nil)
	next.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "session-1"})
	assert.Equal(t, []string{"first", "second"}, store.Consume(next))

	// A second load sees nothing.
	assert.Empty(t, store.Consume(next))
}

/*
TestFlash_ConsumeWithoutCookie verifies that an unknown browser has no flashes.
*/
func TestFlash_ConsumeWithoutCookie(t *testing.T) {
	store := testStore()

	request := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, store.Consume(request))
}

/*
TestFlash_SessionsAreIsolated verifies that two browsers never see each
other's messages.
*/
func TestFlash_SessionsAreIsolated(t *testing.T) {
	store := testStore()

	first := httptest.NewRequest("POST", "/venues/create", nil)
	first.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "session-a"})
	store.Add(httptest.NewRecorder(), first, "for a")

	second := httptest.NewRequest("GET", "/", nil)
	second.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "session-b"})
	assert.Empty(t, store.Consume(second))
}
