package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"price_checker/internal/presenter"
	"price_checker/pkg/logx"
)

type PageServer struct {
	comparisonService comparisonService
}

func NewPageServer(comparisonService comparisonService) PageServer {
	return PageServer{
		comparisonService: comparisonService,
	}
}

// getPage renders the search form and, when q is set, the result cards. A failed
// search renders the form with a notice instead of an error page.
func (s PageServer) getPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	keyword, err := parseKeyword(r)
	page := presenter.Page{Keyword: keyword.String()}

	if err == nil && !keyword.IsEmpty() {
		comparison, compareErr := s.comparisonService.Compare(ctx, keyword)
		err = compareErr
		page.Cards = presenter.Cards(presenter.EntriesOf(comparison))
	}

	if err != nil {
		logger(ctx).Warn("search page", slog.String(logx.FieldKeyword, keyword.String()), logx.Error(err))
		page.Failed = true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := presenter.RenderHTML(w, page); err != nil {
		return fmt.Errorf("presenter.RenderHTML: %w", err)
	}

	return nil
}
