// Copyright (c) 2026 Marquee. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/platform/apperr"
	"github.com/marquee-live/marquee/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "The Musical Hop", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_USState checks the two-letter state code rule.
*/
func TestValidator_USState(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		isValid bool
	}{
		{"valid_upper", "TX", true},
		{"valid_lower", "ny", true},
		{"invalid_code", "ZZ", false},
		{"full_name", "Texas", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.USState("state", tt.state)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_URL checks the optional http(s) URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"empty_passes", "", true},
		{"valid_https", "https://www.themusicalhop.com", true},
		{"valid_http", "http://example.com/venue", true},
		{"missing_scheme", "www.themusicalhop.com", false},
		{"wrong_scheme", "ftp://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("website", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Phone checks the permissive phone character rule.
*/
func TestValidator_Phone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"empty_passes", "", true},
		{"dashed", "123-123-1234", true},
		{"international", "+1 (512) 123 1234", true},
		{"letters", "call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Phone("phone", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Aggregation verifies that every failing field appears in the
aggregated error, in rule order, and that DetailsLine joins them with commas.
*/
func TestValidator_Aggregation(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "").
		USState("state", "Texas").
		RequiredList("genres", nil)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "name", ae.Details[0].Field)
	assert.Equal(t, "state", ae.Details[1].Field)
	assert.Equal(t, "genres", ae.Details[2].Field)

	line := ae.DetailsLine()
	assert.Equal(t,
		"name: This field is required, state: Must be a valid US state, genres: At least one value is required",
		line)
}
