package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace for all metrics
const namespace = "nations"

// Collector is anything that can register its metrics
type Collector interface {
	Register(reg prometheus.Registerer) error
}

// NewRegistry creates a registry with Go runtime and process collectors,
// then registers every given collector.
func NewRegistry(cs ...Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, c := range cs {
		if err := c.Register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Handler exposes a registry in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func registerAll(reg prometheus.Registerer, metrics ...prometheus.Collector) error {
	for _, metric := range metrics {
		if err := reg.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
