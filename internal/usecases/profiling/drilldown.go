package profiling

import (
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

// drilldown filtra os registros pelo valor pai e reagrega no nível filho.
// Sem registros correspondentes o resultado é vazio, não um erro.
func drilldown(
	records []resolvedRecord,
	parentLevel domain.AggregationLevel,
	parentValue string,
	metric domain.Metric,
) *domain.DrilldownResult {
	childLevel := parentLevel.ChildLevel()
	result := &domain.DrilldownResult{
		ParentLevel: parentLevel,
		ParentValue: parentValue,
		ChildLevel:  childLevel,
		Groups:      []domain.CategoryGroupResult{},
	}

	filtered := filterByGroup(records, parentLevel, parentValue)
	if len(filtered) == 0 {
		return result
	}

	result.Groups = aggregate(filtered, childLevel, metric)
	return result
}
