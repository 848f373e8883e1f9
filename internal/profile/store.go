package profile

import "context"

// Repository is the persistence contract for the singleton profile row.
type Repository interface {
	// GetFirst returns the profile row, or (nil, nil) when none exists.
	GetFirst(ctx context.Context) (*Profile, error)

	// Create inserts the row and fills in its generated ID and timestamp.
	Create(ctx context.Context, p *Profile) error

	// Update rewrites the row identified by p.ID.
	Update(ctx context.Context, p *Profile) error
}
