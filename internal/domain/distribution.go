package domain

import "time"

// DistributionEntry é a participação de um valor de atributo no total do grupo
type DistributionEntry struct {
	AttributeValue string  `json:"attribute_value"`
	Percentage     float64 `json:"percentage"`
	Value          float64 `json:"value"`
}

// CategoryGroupResult é a distribuição de um grupo (categoria no nível escolhido ou produto)
type CategoryGroupResult struct {
	Category     string              `json:"category"`
	Total        float64             `json:"total"`
	Distribution []DistributionEntry `json:"distribution"`
}

// IntegratedDimensionResult é a distribuição de uma dimensão para uma seleção fixa
type IntegratedDimensionResult struct {
	Dimension    Dimension           `json:"dimension"`
	Total        float64             `json:"total"`
	Distribution []DistributionEntry `json:"distribution"`
}

type DrilldownResult struct {
	ParentLevel AggregationLevel      `json:"parent_level"`
	ParentValue string                `json:"parent_value"`
	ChildLevel  AggregationLevel      `json:"child_level"`
	Groups      []CategoryGroupResult `json:"groups"`
}

// DimensionAudit contabiliza registros não resolvidos de uma dimensão
type DimensionAudit struct {
	Dimension  Dimension `json:"dimension"`
	Records    int       `json:"records"`
	Unresolved int       `json:"unresolved"`
}

// ResolutionAudit é o resultado da auditoria de referências de uma sessão
type ResolutionAudit struct {
	SessionID  string           `json:"session_id"`
	Dimensions []DimensionAudit `json:"dimensions"`
	AuditedAt  time.Time        `json:"audited_at"`
}

func (a *ResolutionAudit) Unresolved() int {
	total := 0
	for _, d := range a.Dimensions {
		total += d.Unresolved
	}
	return total
}
