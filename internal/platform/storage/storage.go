// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

/*
Package storage defines the object-store boundary for image blobs.

The canonical implementation is S3-compatible (AWS S3, Cloudflare R2, MinIO);
an in-memory implementation backs the test suites.
*/
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ObjectStore stores binary blobs at string keys and exposes them at public URLs.
type ObjectStore interface {
	// Put stores data at key and returns the public URL it is retrievable from.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the blob at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// KeyFromURL recovers the store key from a public blob URL.
//
// Keys are the URL path without the leading slash, e.g.
// "https://bucket.example.com/artworks/1735689600000-sunset.jpg" →
// "artworks/1735689600000-sunset.jpg".
func KeyFromURL(blobURL string) (string, error) {
	parsed, err := url.Parse(blobURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("storage: not an absolute blob URL: %q", blobURL)
	}
	return strings.TrimPrefix(parsed.Path, "/"), nil
}

// FilenameFromURL returns the trailing path segment of a blob URL.
func FilenameFromURL(blobURL string) string {
	trimmed := strings.TrimSuffix(blobURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
