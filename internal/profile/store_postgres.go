package profile

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

func (repository *PostgresRepository) GetFirst(ctx context.Context) (*Profile, error) {
	ref := schema.RefProfile
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC LIMIT 1`,
		ref.ID, ref.ImageURL, ref.Description, ref.UpdatedAt, ref.Table, ref.UpdatedAt,
	)

	p := &Profile{}
	err := repository.db.QueryRow(ctx, query).Scan(&p.ID, &p.ImageURL, &p.Description, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_profile")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, p *Profile) error {
	ref := schema.RefProfile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`, ref.Table, ref.ImageURL, ref.Description, ref.ID, ref.UpdatedAt)

	err := repository.db.QueryRow(ctx, query, p.ImageURL, p.Description).Scan(&p.ID, &p.UpdatedAt)
	return dberr.Wrap(err, "create_profile")
}

func (repository *PostgresRepository) Update(ctx context.Context, p *Profile) error {
	ref := schema.RefProfile
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = now()
		WHERE %s = $1
		RETURNING %s
	`, ref.Table, ref.ImageURL, ref.Description, ref.UpdatedAt, ref.ID, ref.UpdatedAt)

	err := repository.db.QueryRow(ctx, query, p.ID, p.ImageURL, p.Description).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_profile")
}
