package ws

import (
	"net/http"

	"github.com/nickmonteleone/sharebandb-backend/internal/service"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// ServeWS returns an HTTP handler that upgrades to WebSocket.
// Auth is done via ?token=xxx query param (WebSocket can't send headers).
func ServeWS(hub *Hub, auth *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.URL.Query().Get("token")
		if tokenStr == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		user, ok := auth.VerifyToken(tokenStr)
		if !ok {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true, // Allow any origin (dev mode)
		})
		if err != nil {
			hub.logger.Error("ws accept", zap.Error(err))
			return
		}

		client := NewClient(hub, conn, user)
		hub.register <- client

		// Start read/write pumps in goroutines
		go client.WritePump()
		go client.ReadPump()
	}
}
