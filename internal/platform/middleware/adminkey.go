// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/platform/respond"
)

// RequireAdminKey gates every mutating route behind the shared admin secret.
//
// The client must send the exact server-configured value in the x-admin-key
// header. Comparison is constant-time so the secret cannot be probed
// byte-by-byte via response timing. A mismatch is rejected before any store
// mutation is attempted.
func RequireAdminKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			provided := request.Header.Get(constants.HeaderXAdminKey)

			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
