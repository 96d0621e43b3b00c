package service

import (
	"context"
	"testing"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingFixture struct {
	users    *fakeUserRepo
	listings *fakeListingRepo
	photos   *fakePhotoRepo
	svc      *ListingService
}

func newListingFixture(t *testing.T, ownerFromToken bool) *listingFixture {
	t.Helper()

	users := newFakeUserRepo()
	photos := newFakePhotoRepo()
	listings := newFakeListingRepo(users, photos)

	require.NoError(t, users.Create(context.Background(), &domain.User{Username: "a", PasswordHash: "x"}))

	return &listingFixture{
		users:    users,
		listings: listings,
		photos:   photos,
		svc:      NewListingService(listings, photos, nil, ownerFromToken),
	}
}

func validCreateInput() CreateListingInput {
	return CreateListingInput{
		Name:        "Golden Gate Bridge",
		Address:     "San Francisco, CA",
		Description: "A bridge with a view",
		Price:       10,
		OwnerUserID: 1,
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	f := newListingFixture(t, true)
	ctx := context.Background()

	input := validCreateInput()
	input.Photos = []PhotoDescriptor{
		{Description: "front porch"},
		{Description: "kitchen", Source: "https://example.com/kitchen.jpg"},
	}

	created, err := f.svc.Create(ctx, 1, input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "a", created.OwnerUsername)
	require.Len(t, created.Photos, 2)
	assert.Equal(t, domain.DefaultPhotoURL, created.Photos[0].Source)
	assert.Equal(t, "https://example.com/kitchen.jpg", created.Photos[1].Source)
	assert.Equal(t, created.ID, created.Photos[0].ListingID)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateWithoutPhotos(t *testing.T) {
	f := newListingFixture(t, true)

	created, err := f.svc.Create(context.Background(), 1, validCreateInput())
	require.NoError(t, err)

	assert.NotNil(t, created.Photos)
	assert.Empty(t, created.Photos)
}

func TestCreateRoundsPriceToCents(t *testing.T) {
	f := newListingFixture(t, true)

	input := validCreateInput()
	input.Price = 19.999

	created, err := f.svc.Create(context.Background(), 1, input)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, created.Price, 1e-9)
}

func TestCreateOwnerFromToken(t *testing.T) {
	f := newListingFixture(t, true)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &domain.User{Username: "b", PasswordHash: "x"}))

	input := validCreateInput()
	input.OwnerUserID = 2 // body claims user b

	created, err := f.svc.Create(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.OwnerUserID)
	assert.Equal(t, "a", created.OwnerUsername)
}

func TestCreateOwnerFromBody(t *testing.T) {
	f := newListingFixture(t, false)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &domain.User{Username: "b", PasswordHash: "x"}))

	input := validCreateInput()
	input.OwnerUserID = 2

	created, err := f.svc.Create(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.OwnerUserID)
	assert.Equal(t, "b", created.OwnerUsername)
}

func TestGetNotFound(t *testing.T) {
	f := newListingFixture(t, true)

	_, err := f.svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestSearchCaseInsensitive(t *testing.T) {
	f := newListingFixture(t, true)
	ctx := context.Background()

	golden := validCreateInput()
	beach := validCreateInput()
	beach.Name = "Beach House"

	_, err := f.svc.Create(ctx, 1, golden)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, 1, beach)
	require.NoError(t, err)

	results, err := f.svc.Search(ctx, "golden")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Golden Gate Bridge", results[0].Name)
	assert.NotNil(t, results[0].Photos)

	all, err := f.svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := f.svc.Search(ctx, "castle")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteListing(t *testing.T) {
	f := newListingFixture(t, true)
	ctx := context.Background()

	input := validCreateInput()
	input.Photos = []PhotoDescriptor{{Description: "front porch"}}

	created, err := f.svc.Create(ctx, 1, input)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, 1, created.ID))

	_, err = f.svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)

	// Photos cascade with the listing.
	photos, err := f.photos.ListByListing(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestDeleteListingOwnershipChecks(t *testing.T) {
	f := newListingFixture(t, true)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, 1, validCreateInput())
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, 2, created.ID), ErrNotListingOwner)
	assert.ErrorIs(t, f.svc.Delete(ctx, 1, 42), ErrListingNotFound)
}
