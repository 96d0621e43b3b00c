package domain

// DefaultPhotoURL is used for photos created without an uploaded file,
// e.g. descriptors supplied inline with a new listing.
const DefaultPhotoURL = "https://images.pexels.com/photos/106399/pexels-photo-106399.jpeg"

type Photo struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Description string `json:"description"`
	ListingID   int64  `json:"listing_id"`
}
