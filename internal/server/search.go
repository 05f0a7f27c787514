package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
	"price_checker/internal/presenter"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/httpx/reply"
)

type comparisonService interface {
	Compare(ctx context.Context, keyword value.Keyword) (entity.Comparison, error)
}

type SearchServer struct {
	comparisonService comparisonService
}

func NewSearchServer(comparisonService comparisonService) SearchServer {
	return SearchServer{
		comparisonService: comparisonService,
	}
}

// getAPISearch answers with the three entries, or with [] for an empty keyword.
func (s SearchServer) getAPISearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	keyword, err := parseKeyword(r)
	if err != nil {
		return fmt.Errorf("parseKeyword: %w", err)
	}

	comparison, err := s.comparisonService.Compare(ctx, keyword)
	if err != nil {
		return fmt.Errorf("comparisonService.Compare: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, presenter.EntriesOf(comparison))

	return nil
}

// parseKeyword reads q. Only a keyword that is still too long after trimming is
// rejected.
func parseKeyword(r *http.Request) (value.Keyword, error) {
	keyword, err := value.ParseKeyword(r.URL.Query().Get("q"))
	if err != nil {
		return "", failure.NewInvalidArgumentError(
			"invalid keyword",
			failure.WithCode(errcodes.InvalidKeyword),
			failure.WithDescription(err.Error()),
		)
	}

	return keyword, nil
}
