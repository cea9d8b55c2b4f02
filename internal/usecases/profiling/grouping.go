package profiling

import (
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

// resolvedRecord associa o registro ao resultado da sua resolução
type resolvedRecord struct {
	record     *domain.ProfileRecord
	resolution Resolution
}

func attachResolutions(records []*domain.ProfileRecord, resolutions map[string]Resolution) ([]resolvedRecord, int) {
	resolved := make([]resolvedRecord, 0, len(records))
	unresolved := 0
	for _, record := range records {
		resolution := resolutions[record.ProductID]
		if !resolution.Found {
			unresolved++
		}
		resolved = append(resolved, resolvedRecord{record: record, resolution: resolution})
	}
	return resolved, unresolved
}

// groupKey devolve a chave de agrupamento do registro. Registros não
// resolvidos ficam fora de qualquer grupo (ok == false).
func groupKey(rr resolvedRecord, level domain.AggregationLevel) (key string, ok bool) {
	if !rr.resolution.Found {
		return "", false
	}
	return level.GroupKey(rr.resolution.Entity), true
}

// filterByGroup mantém apenas os registros resolvidos cuja chave no nível é value
func filterByGroup(records []resolvedRecord, level domain.AggregationLevel, value string) []resolvedRecord {
	filtered := make([]resolvedRecord, 0)
	for _, rr := range records {
		if key, ok := groupKey(rr, level); ok && key == value {
			filtered = append(filtered, rr)
		}
	}
	return filtered
}
