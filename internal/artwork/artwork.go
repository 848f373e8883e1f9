package artwork

import "time"

// Artwork is a single portfolio piece.
//
// JSON field names are camelCase because the admin client and the static
// reader both consume this shape directly.
type Artwork struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	ImageURL         string    `json:"imageUrl"`
	Collection       string    `json:"collection"`
	Medium           string    `json:"medium"`
	Dimensions       string    `json:"dimensions"`
	CreatedAt        time.Time `json:"createdAt"`
	IsArtistPick     bool      `json:"isArtistPick"`
	IsCollectionPick bool      `json:"isCollectionPick"`
	ViewOrder        *int      `json:"viewOrder,omitempty"`
}

// Filter holds the parameters for an artwork listing.
type Filter struct {
	// Collection restricts the listing to one exact collection value.
	// Nil means no filter.
	Collection *string
}

// ImageUpload is a raw image payload received from the admin client.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Input carries the mutable fields for Create and Update operations.
type Input struct {
	Title            string
	Description      string
	Collection       string
	Medium           string
	Dimensions       string
	IsArtistPick     bool
	IsCollectionPick bool
	ViewOrder        *int

	// Image is required on Create, optional on Update.
	Image *ImageUpload
}

// DeleteResult confirms a completed delete, including the blob that was
// removed alongside the record.
type DeleteResult struct {
	Success         bool   `json:"success"`
	ID              string `json:"id"`
	DeletedImageKey string `json:"deletedImageKey"`
	ImageURL        string `json:"imageUrl"`
}

const (
	FieldTitle     = "title"
	FieldImage     = "image"
	FieldViewOrder = "viewOrder"
)
