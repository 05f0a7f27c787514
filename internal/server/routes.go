package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"price_checker/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if s.rateLimit != nil {
			r.Use(s.rateLimit)
		}

		r.Get("/", handler(s.getPage))
		r.Get("/api/search", handler(s.getAPISearch))
	})

	r.Get("/api/history", handler(s.getAPIHistory))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
