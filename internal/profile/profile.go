// Package profile manages the single artist profile: an optional portrait
// image plus a free-form description. The system keeps at most one profile
// row; reads and writes always target the first (and only) record.
package profile

import "time"

// Profile is the artist's public profile.
type Profile struct {
	ID          string    `json:"id"`
	ImageURL    *string   `json:"imageUrl"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Placeholder is the shape returned when no profile row exists yet. Both
// fields serialize as explicit nulls so the public site can render an
// empty profile without special-casing a missing document.
type Placeholder struct {
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
}

// ImageUpload carries a raw portrait file from a multipart request.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Input is the write payload for the profile upsert.
type Input struct {
	Description string
	Image       *ImageUpload
}
