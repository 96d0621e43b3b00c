package repository

import (
	"context"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ListingRepository interface {
	// Create inserts the listing and any inline photos in one transaction.
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	// Search filters by case-insensitive name substring; empty returns all.
	Search(ctx context.Context, name string) ([]domain.Listing, error)
	Delete(ctx context.Context, id int64) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	ListByListing(ctx context.Context, listingID int64) ([]domain.Photo, error)
}
