package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"price_checker/pkg/metrics"
)

// MetricServer serves metrics.Registry. An empty ListenAddress turns it off.
type MetricServer struct {
	ListenAddress string
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.ListenAddress == "" {
		logger(ctx).Info("metric server disabled")
		return
	}

	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
