package fx

import (
	"Credify/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newMetricsRegistry,
		newMetrics,
	),
)

func newMetricsRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func newMetrics(registry *prometheus.Registry) *middleware.Metrics {
	return middleware.NewMetrics(registry)
}
