// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: The admin header carrying the shared mutation secret.
  - Sync Output: File names of the published static-site documents.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "portfolio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads arrive as multipart bodies of a few megabytes, so this is more
	// generous than a JSON-only API would need.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Request Limits

const (
	// MaxUploadBytes caps the in-memory portion of a multipart image upload.
	MaxUploadBytes = 32 << 20
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXAdminKey     = "x-admin-key"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldSuccess = "success"
)

// # Object Store Folders

const (
	// FolderArtworks prefixes artwork image keys in the object store.
	FolderArtworks = "artworks"

	// FolderProfile prefixes profile portrait keys in the object store.
	FolderProfile = "profile"
)

// # Sync Output Files

const (
	// ImagesSubdir is created under the data directory for mirrored images.
	ImagesSubdir = "images"

	FileArtworks    = "artworks.json"
	FileCollections = "collections.json"
	FileProfile     = "profile.json"
	FileArtistPick  = "artist-pick.json"
	FileRoutes      = "routes.json"

	// PublicImagePrefix is the URL path under which the static site serves
	// mirrored images. localImagePath values are rooted here.
	PublicImagePrefix = "/data/images/"
)
