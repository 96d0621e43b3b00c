package service

import (
	"context"
	"fmt"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/nickmonteleone/sharebandb-backend/internal/repository"
)

// Storage uploads a blob under a key and returns a stable retrieval URL.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type PhotoService struct {
	photoRepo   repository.PhotoRepository
	listingRepo repository.ListingRepository
	storage     Storage
	notifier    Notifier
}

func NewPhotoService(photoRepo repository.PhotoRepository, listingRepo repository.ListingRepository, storage Storage, notifier Notifier) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		listingRepo: listingRepo,
		storage:     storage,
		notifier:    notifier,
	}
}

type AddPhotoInput struct {
	ListingID   int64
	Description string
	FileName    string
	ContentType string
	Data        []byte
}

// Add uploads the file bytes and persists the photo row. The upload comes
// first: if it fails, no row is written; if the insert fails, the orphaned
// object is harmless.
func (s *PhotoService) Add(ctx context.Context, input AddPhotoInput) (*domain.Photo, error) {
	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	key := fmt.Sprintf("listing-%d-%s", input.ListingID, input.FileName)
	url, err := s.storage.Upload(ctx, key, input.Data, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("uploading photo: %w", err)
	}

	photo := &domain.Photo{
		Source:      url,
		Description: input.Description,
		ListingID:   input.ListingID,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("creating photo: %w", err)
	}

	if s.notifier != nil {
		s.notifier.PhotoAdded(photo)
	}
	return photo, nil
}
