package schema

// RefArtworkTable represents the 'artwork' table
type RefArtworkTable struct {
	Table            string
	ID               string
	Title            string
	Description      string
	ImageURL         string
	Collection       string
	Medium           string
	Dimensions       string
	CreatedAt        string
	IsArtistPick     string
	IsCollectionPick string
	ViewOrder        string
}

// RefArtwork is the schema definition for artwork
var RefArtwork = RefArtworkTable{
	Table:            "artwork",
	ID:               "id",
	Title:            "title",
	Description:      "description",
	ImageURL:         "image_url",
	Collection:       "collection",
	Medium:           "medium",
	Dimensions:       "dimensions",
	CreatedAt:        "created_at",
	IsArtistPick:     "is_artist_pick",
	IsCollectionPick: "is_collection_pick",
	ViewOrder:        "view_order",
}

func (t RefArtworkTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.ImageURL, t.Collection, t.Medium,
		t.Dimensions, t.CreatedAt, t.IsArtistPick, t.IsCollectionPick, t.ViewOrder,
	}
}
