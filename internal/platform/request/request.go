// Copyright (c) 2026 Marquee. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
form decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marquee-live/marquee/internal/platform/apperr"
	"github.com/marquee-live/marquee/internal/platform/validate"
)

// formTimeLayouts are the accepted start-time formats, tried in order:
// the datetime-local input format, the legacy picker format, and RFC 3339.
var formTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

/*
ParseForm parses an application/x-www-form-urlencoded request body.

Returns:
  - error: validate.ErrInvalidForm if decoding fails, otherwise nil
*/
func ParseForm(request *http.Request) error {
	if err := request.ParseForm(); err != nil {
		return validate.ErrInvalidForm
	}
	return nil
}

/*
Field retrieves a single form value with surrounding whitespace trimmed.
*/
func Field(request *http.Request, name string) string {
	return strings.TrimSpace(request.PostFormValue(name))
}

/*
Fields retrieves all values submitted under one name (multi-select inputs),
preserving submission order.
*/
func Fields(request *http.Request, name string) []string {
	if request.PostForm == nil {
		return nil
	}
	return request.PostForm[name]
}

/*
Checkbox reports whether a checkbox input was submitted as checked.

Browsers send "y", "on" or "true" depending on the input markup; an absent
field is unchecked.
*/
func Checkbox(request *http.Request, name string) bool {
	switch strings.ToLower(Field(request, name)) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

/*
ParseTime parses a submitted timestamp using the accepted form layouts.
*/
func ParseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range formTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

/*
IntID retrieves a numeric URL parameter from the request.

A non-numeric id means the URL does not address any record, so the error is
a NotFound rather than a validation failure.
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Page")
	}
	return id, nil
}
