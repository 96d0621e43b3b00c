package ws

import (
	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"go.uber.org/zap"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) ListingCreated(listing *domain.Listing) {
	evt, err := NewEvent(EventTypeListingCreated, ListingPayload{Listing: *listing})
	if err != nil {
		n.hub.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) PhotoAdded(photo *domain.Photo) {
	evt, err := NewEvent(EventTypePhotoAdded, PhotoPayload{Photo: *photo})
	if err != nil {
		n.hub.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) ListingDeleted(listingID int64) {
	evt, err := NewEvent(EventTypeListingDeleted, ListingDeletedPayload{ID: listingID})
	if err != nil {
		n.hub.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt)
}
