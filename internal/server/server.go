package server

import "net/http"

// Server joins the HTTP servers of the separate resources.
type Server struct {
	SearchServer
	HistoryServer
	PageServer

	rateLimit func(next http.Handler) http.Handler
}

func NewServer(
	searchServer SearchServer,
	historyServer HistoryServer,
	pageServer PageServer,
) Server {
	return Server{
		SearchServer:  searchServer,
		HistoryServer: historyServer,
		PageServer:    pageServer,
	}
}

// WithRateLimit limits the search endpoints with the given middleware.
func (s Server) WithRateLimit(rateLimit func(next http.Handler) http.Handler) Server {
	s.rateLimit = rateLimit
	return s
}
