package sync

import (
	"strings"
	"time"

	"github.com/haileyart/portfolio/internal/artwork"
)

// ExportedArtwork is the artworks.json item shape: the artwork record plus
// the path of its locally mirrored image. LocalImagePath is omitted when the
// mirror step failed for this item.
type ExportedArtwork struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	ImageURL         string    `json:"imageUrl"`
	LocalImagePath   string    `json:"localImagePath,omitempty"`
	Collection       string    `json:"collection"`
	Medium           string    `json:"medium"`
	Dimensions       string    `json:"dimensions"`
	CreatedAt        time.Time `json:"createdAt"`
	IsArtistPick     bool      `json:"isArtistPick"`
	IsCollectionPick bool      `json:"isCollectionPick"`
	ViewOrder        *int      `json:"viewOrder,omitempty"`
}

// ExportedProfile is the profile.json shape: the profile record plus the
// path of its locally mirrored portrait. LocalImagePath is an explicit null
// when there is no portrait or its mirror failed.
type ExportedProfile struct {
	ID             string    `json:"id"`
	ImageURL       *string   `json:"imageUrl"`
	LocalImagePath *string   `json:"localImagePath"`
	Description    *string   `json:"description"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Collection is the collections.json item shape.
type Collection struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Thumbnail string `json:"thumbnail"`
}

// Routes lists every static route the site generator must render.
type Routes struct {
	ArtworkIDs      []string `json:"artworkIds"`
	CollectionNames []string `json:"collectionNames"`
}

func exportArtwork(a *artwork.Artwork, localPath string) ExportedArtwork {
	return ExportedArtwork{
		ID:               a.ID,
		Title:            a.Title,
		Description:      a.Description,
		ImageURL:         a.ImageURL,
		LocalImagePath:   localPath,
		Collection:       a.Collection,
		Medium:           a.Medium,
		Dimensions:       a.Dimensions,
		CreatedAt:        a.CreatedAt,
		IsArtistPick:     a.IsArtistPick,
		IsCollectionPick: a.IsCollectionPick,
		ViewOrder:        a.ViewOrder,
	}
}

// buildCollections groups artworks by collection name in encounter order.
// Blank names are uncollected artworks and never form a collection. The
// thumbnail is the designated pick's mirrored image, falling back to the
// first member's when no pick exists or the pick's mirror failed.
func buildCollections(items []ExportedArtwork) []Collection {
	ordered := []Collection{}
	index := map[string]int{}

	for _, item := range items {
		name := item.Collection
		if strings.TrimSpace(name) == "" {
			continue
		}

		position, seen := index[name]
		if !seen {
			position = len(ordered)
			index[name] = position
			ordered = append(ordered, Collection{Name: name})
		}

		collection := &ordered[position]
		collection.Count++

		if item.IsCollectionPick && item.LocalImagePath != "" {
			collection.Thumbnail = item.LocalImagePath
		} else if collection.Thumbnail == "" && collection.Count == 1 {
			collection.Thumbnail = item.LocalImagePath
		}
	}

	return ordered
}

// artistPick returns the first artwork flagged as the artist pick, or nil.
func artistPick(items []ExportedArtwork) *ExportedArtwork {
	for i := range items {
		if items[i].IsArtistPick {
			return &items[i]
		}
	}
	return nil
}

func buildRoutes(items []ExportedArtwork, collections []Collection) Routes {
	routes := Routes{
		ArtworkIDs:      make([]string, 0, len(items)),
		CollectionNames: make([]string, 0, len(collections)),
	}
	for _, item := range items {
		routes.ArtworkIDs = append(routes.ArtworkIDs, item.ID)
	}
	for _, collection := range collections {
		routes.CollectionNames = append(routes.CollectionNames, collection.Name)
	}
	return routes
}
