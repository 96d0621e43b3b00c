package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/nickmonteleone/sharebandb-backend/internal/repository"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("not the listing owner")
)

// Notifier receives events after a successful write. A nil Notifier is valid.
type Notifier interface {
	ListingCreated(listing *domain.Listing)
	PhotoAdded(photo *domain.Photo)
	ListingDeleted(listingID int64)
}

type ListingService struct {
	listingRepo    repository.ListingRepository
	photoRepo      repository.PhotoRepository
	notifier       Notifier
	ownerFromToken bool
}

func NewListingService(listingRepo repository.ListingRepository, photoRepo repository.PhotoRepository, notifier Notifier, ownerFromToken bool) *ListingService {
	return &ListingService{
		listingRepo:    listingRepo,
		photoRepo:      photoRepo,
		notifier:       notifier,
		ownerFromToken: ownerFromToken,
	}
}

type PhotoDescriptor struct {
	Description string `json:"description"`
	Source      string `json:"source"`
}

type CreateListingInput struct {
	Name        string
	Address     string
	Description string
	Price       float64
	OwnerUserID int64
	Photos      []PhotoDescriptor
}

// Create persists a listing and its inline photo descriptors as one unit.
// Descriptors carry no uploaded file; a blank source takes the placeholder.
// When owner-from-token is enabled the authenticated identity wins over
// whatever owner_user_id the body claims.
func (s *ListingService) Create(ctx context.Context, tokenUserID int64, input CreateListingInput) (*domain.Listing, error) {
	owner := input.OwnerUserID
	if s.ownerFromToken {
		owner = tokenUserID
	}

	photos := make([]domain.Photo, 0, len(input.Photos))
	for _, d := range input.Photos {
		source := d.Source
		if source == "" {
			source = domain.DefaultPhotoURL
		}
		photos = append(photos, domain.Photo{
			Description: d.Description,
			Source:      source,
		})
	}

	listing := &domain.Listing{
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		Price:       math.Round(input.Price*100) / 100,
		OwnerUserID: owner,
		Photos:      photos,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	// The repo scans the owner id but not the username; re-read so the
	// response carries the same serialization as a later GET.
	created, err := s.listingRepo.GetByID(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	created.Photos = listing.Photos

	if s.notifier != nil {
		s.notifier.ListingCreated(created)
	}
	return created, nil
}

func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	photos, err := s.photoRepo.ListByListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []domain.Photo{}
	}
	listing.Photos = photos

	return listing, nil
}

// Search returns listings whose name contains the query, case-insensitively.
// An empty query returns the full collection.
func (s *ListingService) Search(ctx context.Context, query string) ([]domain.Listing, error) {
	listings, err := s.listingRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	for i := range listings {
		photos, err := s.photoRepo.ListByListing(ctx, listings[i].ID)
		if err != nil {
			return nil, err
		}
		if photos == nil {
			photos = []domain.Photo{}
		}
		listings[i].Photos = photos
	}

	return listings, nil
}

// Delete removes a listing owned by the authenticated user; photos cascade.
func (s *ListingService) Delete(ctx context.Context, tokenUserID, id int64) error {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	if listing.OwnerUserID != tokenUserID {
		return ErrNotListingOwner
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.ListingDeleted(id)
	}
	return nil
}
