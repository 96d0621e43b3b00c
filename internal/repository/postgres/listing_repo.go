package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
)

type ListingRepo struct {
	pool *pgxpool.Pool
}

func NewListingRepo(pool *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// Create inserts the listing together with its inline photos in one
// transaction, so an invalid photo never leaves a half-written listing.
func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO listings (name, address, description, price, owner_user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if err := tx.QueryRow(ctx, query,
		l.Name, l.Address, l.Description, l.Price, l.OwnerUserID,
	).Scan(&l.ID); err != nil {
		return err
	}

	for i := range l.Photos {
		p := &l.Photos[i]
		p.ListingID = l.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO photos (description, source, listing_id) VALUES ($1, $2, $3) RETURNING id`,
			p.Description, p.Source, p.ListingID,
		).Scan(&p.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `
		SELECT l.id, l.name, l.address, l.description, l.price, l.owner_user_id, u.username
		FROM listings l
		JOIN users u ON l.owner_user_id = u.id
		WHERE l.id = $1`

	var l domain.Listing
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.Description, &l.Price, &l.OwnerUserID, &l.OwnerUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepo) Search(ctx context.Context, name string) ([]domain.Listing, error) {
	query := `
		SELECT l.id, l.name, l.address, l.description, l.price, l.owner_user_id, u.username
		FROM listings l
		JOIN users u ON l.owner_user_id = u.id
		WHERE l.name ILIKE '%' || $1 || '%'
		ORDER BY l.id`

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Description, &l.Price, &l.OwnerUserID, &l.OwnerUsername); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Delete removes the listing; its photos go with it via ON DELETE CASCADE.
func (r *ListingRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	return err
}
