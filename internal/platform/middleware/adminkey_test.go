// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haileyart/portfolio/internal/platform/middleware"
)

func TestRequireAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"matching_key", "s3cret", "s3cret", http.StatusOK, true},
		{"wrong_key", "s3cret", "nope", http.StatusUnauthorized, false},
		{"missing_header", "s3cret", "", http.StatusUnauthorized, false},
		{"empty_secret_rejects_all", "", "", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				nextCalled = true
				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodPost, "/api/artworks", nil)
			if tt.header != "" {
				request.Header.Set("x-admin-key", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.RequireAdminKey(tt.secret)(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if !tt.wantNext {
				assert.Contains(t, recorder.Body.String(), `"error"`)
				assert.Contains(t, recorder.Body.String(), "UNAUTHORIZED")
			}
		})
	}
}
