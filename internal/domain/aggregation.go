package domain

// Dimension é o eixo demográfico sob o qual os registros de perfil são classificados
type Dimension string

const (
	DimensionChildAge      Dimension = "child-age"
	DimensionMaritalStatus Dimension = "marital-status"
	DimensionHouseholdSize Dimension = "household-size"
)

// CanonicalDimensions define a ordem fixa da visão integrada. Alterar esta
// lista altera o formato da resposta da visão integrada.
var CanonicalDimensions = []Dimension{
	DimensionChildAge,
	DimensionMaritalStatus,
	DimensionHouseholdSize,
}

func (d Dimension) Valid() bool {
	switch d {
	case DimensionChildAge, DimensionMaritalStatus, DimensionHouseholdSize:
		return true
	}
	return false
}

// AggregationLevel é a granularidade de agrupamento dos produtos
type AggregationLevel string

const (
	LevelL1      AggregationLevel = "L1"
	LevelL2      AggregationLevel = "L2"
	LevelL3      AggregationLevel = "L3"
	LevelProduct AggregationLevel = "product"

	// DefaultAggregationLevel é usado quando o nível não é reconhecido
	DefaultAggregationLevel = LevelL2
)

func (l AggregationLevel) Valid() bool {
	switch l {
	case LevelL1, LevelL2, LevelL3, LevelProduct:
		return true
	}
	return false
}

// HasChildLevel indica se o nível pode ser detalhado em um nível filho.
// O nível de produto é a folha da hierarquia.
func (l AggregationLevel) HasChildLevel() bool {
	switch l {
	case LevelL1, LevelL2, LevelL3:
		return true
	}
	return false
}

// GroupKey devolve a chave de agrupamento da entidade resolvida no nível l.
// Níveis desconhecidos caem no nível L2.
func (l AggregationLevel) GroupKey(entity ResolvedEntity) string {
	switch l {
	case LevelL1:
		return entity.Level1
	case LevelL3:
		return entity.Level3
	case LevelProduct:
		return entity.ProductName
	case LevelL2:
		return entity.Level2
	default:
		return entity.Level2
	}
}

// ChildLevel devolve o nível imediatamente mais fino: L1→L2, L2→L3 e qualquer outro→product
func (l AggregationLevel) ChildLevel() AggregationLevel {
	switch l {
	case LevelL1:
		return LevelL2
	case LevelL2:
		return LevelL3
	default:
		return LevelProduct
	}
}

// Metric é o nome da métrica numérica somada na distribuição
type Metric string

const (
	MetricPaymentAmount   Metric = "paymentAmount"
	MetricPaymentCount    Metric = "paymentCount"
	MetricPaymentQuantity Metric = "paymentQuantity"

	// DefaultMetric é usado quando a métrica não é reconhecida
	DefaultMetric = MetricPaymentAmount
)

// Métricas de reembolso existem no registro mas não são expostas nas consultas
func (m Metric) Valid() bool {
	switch m {
	case MetricPaymentAmount, MetricPaymentCount, MetricPaymentQuantity:
		return true
	}
	return false
}

// Value extrai o valor da métrica do registro. Métricas desconhecidas caem em paymentAmount.
func (m Metric) Value(record *ProfileRecord) float64 {
	switch m {
	case MetricPaymentCount:
		return record.PaymentCount
	case MetricPaymentQuantity:
		return record.PaymentQuantity
	case MetricPaymentAmount:
		return record.PaymentAmount
	default:
		return record.PaymentAmount
	}
}
