package artwork

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haileyart/portfolio/internal/platform/database/schema"
	"github.com/haileyart/portfolio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the shared projection for all artwork reads.
func selectColumns() string {
	ref := schema.RefArtwork
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		ref.ID, ref.Title, ref.Description, ref.ImageURL, ref.Collection, ref.Medium,
		ref.Dimensions, ref.CreatedAt, ref.IsArtistPick, ref.IsCollectionPick, ref.ViewOrder,
	)
}

func scanArtwork(row pgx.Row) (*Artwork, error) {
	a := &Artwork{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.Collection, &a.Medium,
		&a.Dimensions, &a.CreatedAt, &a.IsArtistPick, &a.IsCollectionPick, &a.ViewOrder,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) List(ctx context.Context, f Filter) ([]*Artwork, error) {
	ref := schema.RefArtwork
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), ref.Table)

	args := []any{}
	if f.Collection != nil {
		query += fmt.Sprintf(" WHERE %s = $1", ref.Collection)
		args = append(args, *f.Collection)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC NULLS LAST, %s DESC", ref.ViewOrder, ref.CreatedAt)

	return repository.queryMany(ctx, query, args, "list_artworks")
}

func (repository *PostgresRepository) ListForExport(ctx context.Context) ([]*Artwork, error) {
	ref := schema.RefArtwork
	query := fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY %s ASC, %s ASC NULLS LAST, %s DESC`,
		selectColumns(), ref.Table, ref.Collection, ref.ViewOrder, ref.CreatedAt,
	)

	return repository.queryMany(ctx, query, nil, "list_artworks_for_export")
}

func (repository *PostgresRepository) queryMany(ctx context.Context, query string, args []any, action string) ([]*Artwork, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var artworks []*Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		artworks = append(artworks, a)
	}

	return artworks, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (*Artwork, error) {
	ref := schema.RefArtwork
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(), ref.Table, ref.ID)

	a, err := scanArtwork(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_artwork")
	}
	return a, nil
}

func (repository *PostgresRepository) GetArtistPick(ctx context.Context) (*Artwork, error) {
	ref := schema.RefArtwork
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, selectColumns(), ref.Table, ref.IsArtistPick)

	a, err := scanArtwork(repository.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist_pick")
	}
	return a, nil
}

func (repository *PostgresRepository) GetCollectionPick(ctx context.Context, collection string) (*Artwork, error) {
	ref := schema.RefArtwork
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s AND %s = $1 LIMIT 1`,
		selectColumns(), ref.Table, ref.IsCollectionPick, ref.Collection,
	)

	a, err := scanArtwork(repository.db.QueryRow(ctx, query, collection))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_collection_pick")
	}
	return a, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, a *Artwork) error {
	ref := schema.RefArtwork

	err := pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		if err := clearCompetingPicks(ctx, tx, a, ""); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING %s, %s
		`,
			ref.Table, ref.Title, ref.Description, ref.ImageURL, ref.Collection, ref.Medium,
			ref.Dimensions, ref.IsArtistPick, ref.IsCollectionPick, ref.ViewOrder,
			ref.ID, ref.CreatedAt,
		)

		return tx.QueryRow(ctx, query,
			a.Title, a.Description, a.ImageURL, a.Collection, a.Medium,
			a.Dimensions, a.IsArtistPick, a.IsCollectionPick, a.ViewOrder,
		).Scan(&a.ID, &a.CreatedAt)
	})

	return dberr.Wrap(err, "create_artwork")
}

func (repository *PostgresRepository) Update(ctx context.Context, a *Artwork) error {
	ref := schema.RefArtwork

	err := pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		if err := clearCompetingPicks(ctx, tx, a, a.ID); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
			WHERE %s = $1
			RETURNING %s
		`,
			ref.Table, ref.Title, ref.Description, ref.ImageURL, ref.Collection, ref.Medium,
			ref.Dimensions, ref.IsArtistPick, ref.IsCollectionPick, ref.ViewOrder,
			ref.ID, ref.CreatedAt,
		)

		return tx.QueryRow(ctx, query,
			a.ID, a.Title, a.Description, a.ImageURL, a.Collection, a.Medium,
			a.Dimensions, a.IsArtistPick, a.IsCollectionPick, a.ViewOrder,
		).Scan(&a.CreatedAt)
	})

	return dberr.Wrap(err, "update_artwork")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	ref := schema.RefArtwork
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ref.Table, ref.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artwork")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// clearCompetingPicks resets pick flags on every other row that would
// violate the singleton invariants once a is written. excludeID is empty for
// inserts. Runs inside the caller's transaction so the clear and the write
// land atomically.
func clearCompetingPicks(ctx context.Context, tx pgx.Tx, a *Artwork, excludeID string) error {
	ref := schema.RefArtwork

	if a.IsArtistPick {
		query := fmt.Sprintf(`UPDATE %s SET %s = false WHERE %s`, ref.Table, ref.IsArtistPick, ref.IsArtistPick)
		args := []any{}
		if excludeID != "" {
			query += fmt.Sprintf(" AND %s != $1", ref.ID)
			args = append(args, excludeID)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	if a.IsCollectionPick {
		query := fmt.Sprintf(
			`UPDATE %s SET %s = false WHERE %s AND %s = $1`,
			ref.Table, ref.IsCollectionPick, ref.IsCollectionPick, ref.Collection,
		)
		args := []any{a.Collection}
		if excludeID != "" {
			query += fmt.Sprintf(" AND %s != $2", ref.ID)
			args = append(args, excludeID)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}
