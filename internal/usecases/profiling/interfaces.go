package profiling

import (
	"context"

	"github.com/vfg2006/customer-profile-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Profiler expõe as consultas de leitura de perfil de clientes
type Profiler interface {
	// AvailableGroups lista as chaves de agrupamento presentes entre os registros resolvidos
	AvailableGroups(ctx context.Context, query domain.GroupsQuery) ([]string, error)

	// CategoryHierarchy retorna as triplas (L1, L2, L3) distintas em ordem lexicográfica
	CategoryHierarchy(ctx context.Context) ([]domain.CategoryPath, error)

	// Dimensions retorna as dimensões canônicas na ordem da visão integrada
	Dimensions() []domain.Dimension

	// Distribution calcula a distribuição plana agrupada pelo nível escolhido
	Distribution(ctx context.Context, query domain.DistributionQuery) ([]domain.CategoryGroupResult, error)

	// Drilldown restringe a um valor pai e reagrega no nível filho
	Drilldown(ctx context.Context, query domain.DrilldownQuery) (*domain.DrilldownResult, error)

	// IntegratedView calcula todas as dimensões canônicas para uma única seleção
	IntegratedView(ctx context.Context, query domain.IntegratedQuery) ([]domain.IntegratedDimensionResult, error)

	// ListSessions lista as sessões informadas, ou todas quando nenhuma é informada
	ListSessions(ctx context.Context, sessionIDs []string) ([]*domain.Session, error)
}

// Auditor verifica referências de produto e categoria não resolvidas de uma sessão
type Auditor interface {
	AuditSession(ctx context.Context, sessionID string) (*domain.ResolutionAudit, error)
}
