// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
multipart form decoding used by the admin mutation endpoints, ensuring
consistent error handling and type safety.
*/
package requestutil

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Upload is an image file extracted from a multipart form.
type Upload struct {
	// Filename is the client-supplied original file name.
	Filename string
	// Data is the full file content.
	Data []byte
}

/*
ParseForm parses the request body as a multipart form, capping the in-memory
buffer at [constants.MaxUploadBytes].

Returns validate.ErrInvalidForm if the body is not a well-formed multipart form.
*/
func ParseForm(request *http.Request) error {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return validate.ErrInvalidForm
	}
	return nil
}

/*
FormValue returns the trimmed string value of a multipart form field.
*/
func FormValue(request *http.Request, name string) string {
	return strings.TrimSpace(request.FormValue(name))
}

/*
FormBool interprets a form field as a boolean.

The admin client sends booleans as the strings "true"/"false" (multipart
forms have no native boolean type), so only the exact string "true" is true.
*/
func FormBool(request *http.Request, name string) bool {
	return request.FormValue(name) == "true"
}

/*
FormIntPtr interprets an optional form field as an integer.

Returns nil when the field is absent or empty, and an error when it is
present but not numeric.
*/
func FormIntPtr(request *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(request.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validate.RequiredError(name, "Must be an integer")
	}
	return &value, nil
}

/*
FormImage extracts the uploaded image file from a multipart form.

Returns (nil, nil) when no file was sent under the given field name, so
callers can distinguish "no new image" from a malformed upload.
*/
func FormImage(request *http.Request, name string) (*Upload, error) {
	file, header, err := request.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, validate.ErrInvalidForm
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, validate.ErrInvalidForm
	}

	return &Upload{Filename: header.Filename, Data: data}, nil
}
