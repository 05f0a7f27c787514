package handler

import (
	"context"

	"price_checker/internal/domain/entity"
	"price_checker/internal/domain/value"
	"price_checker/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type comparisonService interface {
	Compare(ctx context.Context, keyword value.Keyword) (entity.Comparison, error)
}

type Handler struct {
	svc comparisonService
}

func New(svc comparisonService) *Handler {
	return &Handler{
		svc: svc,
	}
}
