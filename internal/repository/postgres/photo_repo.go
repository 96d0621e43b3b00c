package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
)

type PhotoRepo struct {
	pool *pgxpool.Pool
}

func NewPhotoRepo(pool *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{pool: pool}
}

func (r *PhotoRepo) Create(ctx context.Context, p *domain.Photo) error {
	query := `
		INSERT INTO photos (description, source, listing_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.pool.QueryRow(ctx, query, p.Description, p.Source, p.ListingID).Scan(&p.ID)
}

func (r *PhotoRepo) ListByListing(ctx context.Context, listingID int64) ([]domain.Photo, error) {
	query := `SELECT id, description, source, listing_id FROM photos WHERE listing_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.Description, &p.Source, &p.ListingID); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
