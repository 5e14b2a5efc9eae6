package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/country"
)

// GameMetricsCollector records advancement and construction events.
// It satisfies the application's GameRecorder.
type GameMetricsCollector struct {
	advancementsTotal *prometheus.CounterVec
	advancementHours  prometheus.Histogram
	promotedTotal     *prometheus.CounterVec
	admissionsTotal   *prometheus.CounterVec
}

// NewGameMetricsCollector creates a new game metrics collector
func NewGameMetricsCollector() *GameMetricsCollector {
	return &GameMetricsCollector{
		advancementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "game",
				Name:      "advancements_total",
				Help:      "Advancement attempts by result (applied or throttled)",
			},
			[]string{"result"},
		),
		advancementHours: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "game",
				Name:      "advancement_elapsed_hours",
				Help:      "Hours covered by each applied advancement",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 6, 12, 24, 72, 168},
			},
		),
		promotedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "game",
				Name:      "buildings_completed_total",
				Help:      "Construction orders promoted to owned buildings",
			},
			[]string{"building_type"},
		),
		admissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "game",
				Name:      "construction_admissions_total",
				Help:      "Construction requests by building type and outcome",
			},
			[]string{"building_type", "outcome"},
		),
	}
}

// Register registers all game metrics
func (g *GameMetricsCollector) Register(reg prometheus.Registerer) error {
	return registerAll(reg, g.advancementsTotal, g.advancementHours, g.promotedTotal, g.admissionsTotal)
}

// RecordAdvancement counts an advancement and any promotions it made
func (g *GameMetricsCollector) RecordAdvancement(result country.AdvanceResult) {
	if !result.Advanced {
		g.advancementsTotal.WithLabelValues("throttled").Inc()
		return
	}
	g.advancementsTotal.WithLabelValues("applied").Inc()
	g.advancementHours.Observe(result.HoursElapsed)
	for _, t := range result.Completed {
		g.promotedTotal.WithLabelValues(string(t)).Inc()
	}
}

// RecordAdmission counts a construction request outcome.
// Unknown building types are folded into one label to bound cardinality.
func (g *GameMetricsCollector) RecordAdmission(buildingType building.Type, outcome string) {
	label := string(buildingType)
	if outcome == string(country.ReasonInvalidBuildingType) {
		label = "unknown"
	}
	g.admissionsTotal.WithLabelValues(label, outcome).Inc()
}
