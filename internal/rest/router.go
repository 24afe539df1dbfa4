package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter lays out the chat surface. The live endpoint is passed in as a
// plain handler so the websocket layer stays decoupled from this package.
func NewRouter(handler *Handler, liveHandler http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	router := chi.NewRouter()

	for _, m := range middlewares {
		router.Use(m)
	}

	router.Route("/chat-rooms", func(r chi.Router) {
		r.Get("/", handler.ListRooms)
		r.Post("/", handler.CreateRoom)

		r.Route("/{roomID}", func(r chi.Router) {
			r.Delete("/", handler.DeactivateRoom)
			r.Get("/messages", handler.GetRecentMessages)
			r.Post("/messages", handler.SendMessage)
			r.Get("/pinned-messages", handler.GetPinnedMessages)
		})
	})

	router.Route("/messages/{messageID}", func(r chi.Router) {
		r.Delete("/", handler.DeleteMessage)
		r.Post("/like", handler.LikeMessage)
		r.Delete("/like", handler.UnlikeMessage)
		r.Post("/pin", handler.PinMessage)
		r.Delete("/pin", handler.UnpinMessage)
	})

	router.Get("/live/token", handler.GetConnectToken)
	router.Get("/live", liveHandler)

	return router
}
