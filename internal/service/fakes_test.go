package service

import (
	"context"
	"errors"
	"strings"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
)

// In-memory repositories backing the service tests. The listing repo links
// to the user and photo fakes the way the SQL schema links tables, so joins
// and cascades behave like the real store.

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type fakePhotoRepo struct {
	photos map[int64]*domain.Photo
	nextID int64
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[int64]*domain.Photo)}
}

func (r *fakePhotoRepo) Create(_ context.Context, p *domain.Photo) error {
	r.nextID++
	p.ID = r.nextID
	copied := *p
	r.photos[p.ID] = &copied
	return nil
}

func (r *fakePhotoRepo) ListByListing(_ context.Context, listingID int64) ([]domain.Photo, error) {
	var out []domain.Photo
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.photos[id]; ok && p.ListingID == listingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeListingRepo struct {
	listings map[int64]*domain.Listing
	nextID   int64
	users    *fakeUserRepo
	photos   *fakePhotoRepo
}

func newFakeListingRepo(users *fakeUserRepo, photos *fakePhotoRepo) *fakeListingRepo {
	return &fakeListingRepo{
		listings: make(map[int64]*domain.Listing),
		users:    users,
		photos:   photos,
	}
}

func (r *fakeListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	if _, ok := r.users.users[l.OwnerUserID]; !ok {
		return errors.New("violates foreign key constraint")
	}
	r.nextID++
	l.ID = r.nextID

	for i := range l.Photos {
		l.Photos[i].ListingID = l.ID
		if err := r.photos.Create(ctx, &l.Photos[i]); err != nil {
			return err
		}
	}

	copied := *l
	copied.Photos = nil
	r.listings[l.ID] = &copied
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	if owner, ok := r.users.users[l.OwnerUserID]; ok {
		copied.OwnerUsername = owner.Username
	}
	return &copied, nil
}

func (r *fakeListingRepo) Search(ctx context.Context, name string) ([]domain.Listing, error) {
	var out []domain.Listing
	for id := int64(1); id <= r.nextID; id++ {
		l, ok := r.listings[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(name)) {
			got, err := r.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			out = append(out, *got)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id int64) error {
	delete(r.listings, id)
	for pid, p := range r.photos.photos {
		if p.ListingID == id {
			delete(r.photos.photos, pid)
		}
	}
	return nil
}

type fakeStorage struct {
	url             string
	err             error
	lastKey         string
	lastContentType string
	uploads         int
}

func (s *fakeStorage) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	s.lastKey = key
	s.lastContentType = contentType
	return s.url + "/" + key, nil
}
