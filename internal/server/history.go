package server

import (
	"context"
	"fmt"
	"net/http"

	"price_checker/internal/domain/entity"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/httpx/reply"
	"price_checker/pkg/httpx/req"
	"price_checker/pkg/rest"
)

const defaultHistoryLimit = 20

type historyRepository interface {
	List(ctx context.Context, limit int) ([]entity.SearchRecord, error)
}

// HistoryServer serves the recorded searches. A nil repository means the history is
// not configured.
type HistoryServer struct {
	historyRepository historyRepository
}

func NewHistoryServer(historyRepository historyRepository) HistoryServer {
	return HistoryServer{
		historyRepository: historyRepository,
	}
}

func (s HistoryServer) getAPIHistory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if s.historyRepository == nil {
		reply.NotFound(ctx, w, errcodes.HistoryDisabled, "search history is disabled")

		return nil
	}

	limit, err := req.IntQuery(r, "limit", defaultHistoryLimit, errcodes.InvalidPaging)
	if err != nil {
		return fmt.Errorf("req.IntQuery: %w", err)
	}

	query := rest.HistoryQuery{Limit: limit}
	if err := req.Validate(ctx, &query, errcodes.InvalidPaging); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	records, err := s.historyRepository.List(ctx, query.Limit)
	if err != nil {
		return fmt.Errorf("historyRepository.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTHistory(records))

	return nil
}
