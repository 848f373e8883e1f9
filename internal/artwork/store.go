package artwork

import "context"

// Repository is the content-store boundary for artworks.
//
// Implementations must keep the singleton-pick invariants: Create and Update
// clear competing artist/collection picks in the same atomic unit as the
// write itself, so no two rows can both hold a pick slot.
type Repository interface {
	// List returns every artwork matching f, ordered by viewOrder ascending
	// with nulls last, then createdAt descending.
	List(ctx context.Context, f Filter) ([]*Artwork, error)

	// ListForExport returns every artwork ordered by collection ascending,
	// then viewOrder ascending with nulls last, then createdAt descending.
	// This is the fetch-phase ordering of the sync pipeline.
	ListForExport(ctx context.Context) ([]*Artwork, error)

	// Get returns the artwork with the given id, or a not-found error.
	Get(ctx context.Context, id string) (*Artwork, error)

	// GetArtistPick returns the artwork flagged as artist pick, or (nil, nil)
	// when none is flagged.
	GetArtistPick(ctx context.Context) (*Artwork, error)

	// GetCollectionPick returns the flagged artwork of one collection, or
	// (nil, nil) when the collection has no pick.
	GetCollectionPick(ctx context.Context, collection string) (*Artwork, error)

	// Create inserts a, assigning ID and CreatedAt. If a claims a pick slot,
	// the competing rows are cleared within the same transaction.
	Create(ctx context.Context, a *Artwork) error

	// Update rewrites the stored row identified by a.ID. Pick clearing
	// excludes the row itself. Returns a not-found error for a missing id.
	Update(ctx context.Context, a *Artwork) error

	// Delete removes the row. Returns a not-found error for a missing id.
	Delete(ctx context.Context, id string) error
}
