package domain

// DefaultUnknownAttributeValue é o valor reservado que indica atributo desconhecido
const DefaultUnknownAttributeValue = "(unknown)"

// Category é um nó da hierarquia de três níveis. A identidade é a tripla (L1, L2, L3).
type Category struct {
	ID     string `json:"id"`
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
	Level3 string `json:"level3"`
}

type Product struct {
	ID         string `json:"id"`
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}

// ProfileRecord é a unidade atômica processada pelas consultas de distribuição
type ProfileRecord struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	ProductID       string    `json:"product_id"`
	Dimension       Dimension `json:"dimension"`
	AttributeValue  string    `json:"attribute_value"`
	PaymentAmount   float64   `json:"payment_amount"`
	PaymentCount    float64   `json:"payment_count"`
	PaymentQuantity float64   `json:"payment_quantity"`
	RefundAmount    float64   `json:"refund_amount"`
	RefundCount     float64   `json:"refund_count"`
	RefundQuantity  float64   `json:"refund_quantity"`
}

// ResolvedEntity é a tupla achatada registro → produto → categoria
type ResolvedEntity struct {
	ProductName string `json:"product_name"`
	Level1      string `json:"level1"`
	Level2      string `json:"level2"`
	Level3      string `json:"level3"`
}

// CategoryPath é uma linha da listagem achatada da hierarquia
type CategoryPath struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
	Level3 string `json:"level3"`
}
