package profiling

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryDuration mede a latência das consultas por tipo e resultado
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profile_query_duration_seconds",
		Help:    "Profile query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	}, []string{"query", "result"})

	// collectedRecords conta registros coletados por dimensão
	collectedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_collected_records_total",
		Help: "Total profile records collected by dimension",
	}, []string{"dimension"})

	// unresolvedRecords conta registros sem produto ou categoria por dimensão
	unresolvedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_unresolved_records_total",
		Help: "Total profile records excluded for unresolved product or category",
	}, []string{"dimension"})

	// entityLookups conta leituras que chegaram ao repositório
	entityLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_entity_lookups_total",
		Help: "Total product and category lookups issued to the store",
	}, []string{"entity"})
)

func observeQuery(query string, startedAt time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	queryDuration.WithLabelValues(query, result).Observe(time.Since(startedAt).Seconds())
}
