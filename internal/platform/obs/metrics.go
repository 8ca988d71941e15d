package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for the lookup pipeline. A nil
// *Metrics is valid and records nothing, which keeps tests free of registry
// bookkeeping.
type Metrics struct {
	Lookups         *prometheus.CounterVec // labels: source={geocoded,fallback}
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,not_found,wrong_country,out_of_bounds}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
	TravelRequests  *prometheus.CounterVec // labels: mode={driving,transit}, outcome={success,error,cached}
}

// NewMetrics creates and registers the metric set with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_center",
			Name:      "lookups_total",
			Help:      "Completed nearest-center lookups by coordinate source.",
		}, []string{"source"}),
		GeocodeRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_center",
			Name:      "geocode_requests_total",
			Help:      "Geocoding collaborator calls by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_center",
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by result.",
		}, []string{"result"}),
		TravelRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_center",
			Name:      "travel_estimate_requests_total",
			Help:      "Travel estimate attempts by mode and outcome.",
		}, []string{"mode", "outcome"}),
	}
}

func (m *Metrics) LookupResolved(source string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(source).Inc()
}

func (m *Metrics) GeocodeOutcome(outcome string) {
	if m == nil {
		return
	}
	m.GeocodeRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GeocodeCacheResult(result string) {
	if m == nil {
		return
	}
	m.GeocodeCache.WithLabelValues(result).Inc()
}

func (m *Metrics) TravelOutcome(mode, outcome string) {
	if m == nil {
		return
	}
	m.TravelRequests.WithLabelValues(mode, outcome).Inc()
}
