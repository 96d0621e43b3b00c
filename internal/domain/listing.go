package domain

// Listing serializes to the wire shape
// {id, name, address, description, price, photos, username};
// the owner id is internal and the owner's username always rides along.
type Listing struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OwnerUserID   int64   `json:"-"`
	OwnerUsername string  `json:"username"`
	Photos        []Photo `json:"photos"`
}
