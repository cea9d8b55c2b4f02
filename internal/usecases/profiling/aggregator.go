package profiling

import (
	"maps"
	"slices"
	"sort"

	"github.com/vfg2006/customer-profile-api/internal/domain"
	"github.com/vfg2006/customer-profile-api/pkg/utils"
)

// valueSums acumula a métrica por valor de atributo
type valueSums map[string]utils.Sum

func (v valueSums) add(rr resolvedRecord, metric domain.Metric) {
	value := rr.record.AttributeValue
	v[value] = v[value].Add(metric.Value(rr.record))
}

type groupSums struct {
	key   string
	total utils.Sum
}

// aggregate agrupa os registros no nível, soma a métrica por valor de atributo
// e normaliza em percentuais. Registros não resolvidos são descartados.
//
// As chaves são percorridas em ordem lexicográfica antes das ordenações
// estáveis, então empates de percentual ou total saem em ordem alfabética
// independentemente da ordem de coleta.
func aggregate(records []resolvedRecord, level domain.AggregationLevel, metric domain.Metric) []domain.CategoryGroupResult {
	byGroup := make(map[string]valueSums)
	for _, rr := range records {
		key, ok := groupKey(rr, level)
		if !ok {
			continue
		}

		sums, exists := byGroup[key]
		if !exists {
			sums = make(valueSums)
			byGroup[key] = sums
		}
		sums.add(rr, metric)
	}

	keys := slices.Sorted(maps.Keys(byGroup))
	totals := make([]groupSums, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, groupSums{key: key, total: byGroup[key].total()})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].total.Cmp(totals[j].total) > 0
	})

	results := make([]domain.CategoryGroupResult, 0, len(totals))
	for _, g := range totals {
		entries := byGroup[g.key].distribution(g.total)
		results = append(results, domain.CategoryGroupResult{
			Category:     g.key,
			Total:        emittedTotal(entries),
			Distribution: entries,
		})
	}

	return results
}

func (v valueSums) total() utils.Sum {
	total := utils.Sum{}
	for _, sum := range v {
		total = total.Plus(sum)
	}
	return total
}

// distribution calcula o percentual de cada valor sobre total, ordenado por
// percentual decrescente
func (v valueSums) distribution(total utils.Sum) []domain.DistributionEntry {
	values := slices.Sorted(maps.Keys(v))

	entries := make([]domain.DistributionEntry, 0, len(values))
	for _, value := range values {
		entries = append(entries, domain.DistributionEntry{
			AttributeValue: value,
			Percentage:     utils.Percentage(v[value], total),
			Value:          v[value].Float64(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentage > entries[j].Percentage
	})

	return entries
}

// emittedTotal soma em float64 os valores emitidos, na ordem de saída, para
// que o total exposto seja igual à soma dos Value da distribuição.
func emittedTotal(entries []domain.DistributionEntry) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.Value
	}
	return total
}
