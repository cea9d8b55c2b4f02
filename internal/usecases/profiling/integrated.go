package profiling

import (
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

// integrateDimension soma a métrica por valor de atributo apenas para os
// registros cuja chave no nível é value. Dimensões sem dados retornam total 0
// e distribuição vazia.
func integrateDimension(
	dimension domain.Dimension,
	records []resolvedRecord,
	level domain.AggregationLevel,
	value string,
	metric domain.Metric,
) domain.IntegratedDimensionResult {
	sums := make(valueSums)
	for _, rr := range filterByGroup(records, level, value) {
		sums.add(rr, metric)
	}

	entries := sums.distribution(sums.total())
	return domain.IntegratedDimensionResult{
		Dimension:    dimension,
		Total:        emittedTotal(entries),
		Distribution: entries,
	}
}
