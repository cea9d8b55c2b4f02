// Package profiling calcula distribuições percentuais de métricas de pagamento
// por valor de atributo demográfico, agrupadas pela hierarquia de categorias.
package profiling

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/customer-profile-api/infrastructure/repository"
	"github.com/vfg2006/customer-profile-api/internal/config"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
	"github.com/vfg2006/customer-profile-api/pkg/log"
	"github.com/vfg2006/customer-profile-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Service implementa Profiler e Auditor. Nenhum estado é compartilhado entre
// consultas: cada execução cria o seu próprio EntityResolver.
type Service struct {
	sessionRepository  repository.SessionRepository
	productRepository  repository.ProductRepository
	categoryRepository repository.CategoryRepository
	collector          *RecordCollector
}

var (
	_ Profiler = (*Service)(nil)
	_ Auditor  = (*Service)(nil)
)

// NewService cria uma nova instância do serviço de perfis
func NewService(
	cfg *config.Config,
	sessionRepo repository.SessionRepository,
	recordRepo repository.ProfileRecordRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *Service {
	return &Service{
		sessionRepository:  sessionRepo,
		productRepository:  productRepo,
		categoryRepository: categoryRepo,
		collector: NewRecordCollector(
			recordRepo,
			cfg.Profile.MaxConcurrentFetches,
			cfg.Profile.UnknownValue,
		),
	}
}

// queryRun agrupa o estado de uma única execução de consulta
type queryRun struct {
	name     string
	logger   log.Logger
	resolver *EntityResolver
}

func (s *Service) startQuery(ctx context.Context, name string) *queryRun {
	queryID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gerar identificador da consulta")
		queryID = "-"
	}

	return &queryRun{
		name: name,
		logger: log.ForContext(ctx).WithFields(log.Fields{
			"query_id": queryID,
			"query":    name,
		}),
		resolver: NewEntityResolver(s.productRepository, s.categoryRepository),
	}
}

func (q *queryRun) finish(fields log.Fields) {
	products, categories := q.resolver.Lookups()
	fields["profile_product_lookups"] = products
	fields["profile_category_lookups"] = categories
	q.logger.WithFields(fields).Debugf("Consulta %s concluída", q.name)
}

// resolveRecords coleta os registros da dimensão e resolve produto e categoria
// de cada um. Registros não resolvidos são mantidos e marcados.
func (s *Service) resolveRecords(
	ctx context.Context,
	run *queryRun,
	sessionIDs []string,
	dimension domain.Dimension,
	excludeUnknown bool,
) ([]resolvedRecord, int, error) {
	records, err := s.collector.Collect(ctx, sessionIDs, dimension, excludeUnknown)
	if err != nil {
		run.logger.WithError(err).WithField("profile_dimension", dimension).Error("Erro ao coletar registros de perfil")
		return nil, 0, storeError(err, "falha ao coletar registros de perfil")
	}

	resolutions, err := run.resolver.ResolveAll(ctx, records)
	if err != nil {
		run.logger.WithError(err).WithField("profile_dimension", dimension).Error("Erro ao resolver produtos e categorias")
		return nil, 0, storeError(err, "falha ao resolver produtos e categorias")
	}

	resolved, unresolved := attachResolutions(records, resolutions)

	collectedRecords.WithLabelValues(string(dimension)).Add(float64(len(records)))
	if unresolved > 0 {
		unresolvedRecords.WithLabelValues(string(dimension)).Add(float64(unresolved))
		run.logger.WithFields(log.Fields{
			"profile_dimension":  dimension,
			"profile_unresolved": unresolved,
		}).Warn("Registros com produto ou categoria inexistente foram ignorados")
	}

	return resolved, unresolved, nil
}

func (s *Service) Dimensions() []domain.Dimension {
	return slices.Clone(domain.CanonicalDimensions)
}

func (s *Service) Distribution(ctx context.Context, query domain.DistributionQuery) (results []domain.CategoryGroupResult, err error) {
	startedAt := time.Now()
	defer func() { observeQuery("distribution", startedAt, err) }()

	if err := validateQuery(&query); err != nil {
		return nil, err
	}

	run := s.startQuery(ctx, "distribution")
	records, unresolved, err := s.resolveRecords(ctx, run, query.SessionIDs, query.Dimension, query.ExcludeUnknown)
	if err != nil {
		return nil, err
	}

	results = aggregate(records, query.Level, query.Metric)

	run.finish(log.Fields{
		"profile_sessions":   len(query.SessionIDs),
		"profile_dimension":  query.Dimension,
		"profile_records":    len(records),
		"profile_unresolved": unresolved,
		"profile_groups":     len(results),
	})

	return results, nil
}

func (s *Service) Drilldown(ctx context.Context, query domain.DrilldownQuery) (result *domain.DrilldownResult, err error) {
	startedAt := time.Now()
	defer func() { observeQuery("drilldown", startedAt, err) }()

	if err := validateQuery(&query); err != nil {
		return nil, err
	}

	run := s.startQuery(ctx, "drilldown")
	records, unresolved, err := s.resolveRecords(ctx, run, query.SessionIDs, query.Dimension, query.ExcludeUnknown)
	if err != nil {
		return nil, err
	}

	result = drilldown(records, query.ParentLevel, query.ParentValue, query.Metric)

	run.finish(log.Fields{
		"profile_sessions":     len(query.SessionIDs),
		"profile_dimension":    query.Dimension,
		"profile_parent_level": query.ParentLevel,
		"profile_records":      len(records),
		"profile_unresolved":   unresolved,
		"profile_groups":       len(result.Groups),
	})

	return result, nil
}

// IntegratedView executa o pipeline de cada dimensão canônica em paralelo,
// com um único resolvedor compartilhado, e devolve os resultados na ordem
// canônica. Falha de leitura em qualquer dimensão falha a consulta inteira.
func (s *Service) IntegratedView(ctx context.Context, query domain.IntegratedQuery) (results []domain.IntegratedDimensionResult, err error) {
	startedAt := time.Now()
	defer func() { observeQuery("integrated", startedAt, err) }()

	if err := validateQuery(&query); err != nil {
		return nil, err
	}

	run := s.startQuery(ctx, "integrated")
	dimensions := domain.CanonicalDimensions
	results = make([]domain.IntegratedDimensionResult, len(dimensions))
	unresolvedByDimension := make([]int, len(dimensions))

	g, gctx := errgroup.WithContext(ctx)
	for i, dimension := range dimensions {
		g.Go(func() error {
			records, unresolved, err := s.resolveRecords(gctx, run, query.SessionIDs, dimension, query.ExcludeUnknown)
			if err != nil {
				return err
			}

			results[i] = integrateDimension(dimension, records, query.Level, query.Value, query.Metric)
			unresolvedByDimension[i] = unresolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	unresolved := 0
	for _, n := range unresolvedByDimension {
		unresolved += n
	}

	run.finish(log.Fields{
		"profile_sessions":   len(query.SessionIDs),
		"profile_level":      query.Level,
		"profile_unresolved": unresolved,
	})

	return results, nil
}

func (s *Service) AvailableGroups(ctx context.Context, query domain.GroupsQuery) (groups []string, err error) {
	startedAt := time.Now()
	defer func() { observeQuery("groups", startedAt, err) }()

	if err := validateQuery(&query); err != nil {
		return nil, err
	}

	run := s.startQuery(ctx, "groups")
	records, unresolved, err := s.resolveRecords(ctx, run, query.SessionIDs, query.Dimension, false)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	for _, rr := range records {
		if key, ok := groupKey(rr, query.Level); ok {
			keys[key] = struct{}{}
		}
	}
	groups = slices.Sorted(maps.Keys(keys))

	run.finish(log.Fields{
		"profile_dimension":  query.Dimension,
		"profile_records":    len(records),
		"profile_unresolved": unresolved,
		"profile_groups":     len(groups),
	})

	return groups, nil
}

// CategoryHierarchy achata a hierarquia removendo triplas repetidas
func (s *Service) CategoryHierarchy(ctx context.Context) ([]domain.CategoryPath, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar categorias")
		return nil, storeError(err, "falha ao listar categorias")
	}

	seen := make(map[domain.CategoryPath]struct{}, len(categories))
	paths := make([]domain.CategoryPath, 0, len(categories))
	for _, category := range categories {
		path := domain.CategoryPath{
			Level1: category.Level1,
			Level2: category.Level2,
			Level3: category.Level3,
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	slices.SortFunc(paths, func(a, b domain.CategoryPath) int {
		return cmp.Or(
			cmp.Compare(a.Level1, b.Level1),
			cmp.Compare(a.Level2, b.Level2),
			cmp.Compare(a.Level3, b.Level3),
		)
	})

	return paths, nil
}

func (s *Service) ListSessions(ctx context.Context, sessionIDs []string) ([]*domain.Session, error) {
	ids := uniqueSessionIDs(sessionIDs)

	var (
		sessions []*domain.Session
		err      error
	)
	if len(ids) == 0 {
		sessions, err = s.sessionRepository.ListSessions(ctx, 0)
	} else {
		sessions, err = s.sessionRepository.GetSessionsByIDs(ctx, ids)
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar sessões")
		return nil, storeError(err, "falha ao listar sessões")
	}

	return sessions, nil
}

// AuditSession conta, por dimensão canônica, os registros da sessão e quantos
// deles referenciam produto ou categoria inexistente.
func (s *Service) AuditSession(ctx context.Context, sessionID string) (audit *domain.ResolutionAudit, err error) {
	startedAt := time.Now()
	defer func() { observeQuery("audit", startedAt, err) }()

	if strings.TrimSpace(sessionID) == "" {
		return nil, NewProfilingError(ErrMissingSessions, apiErrors.ErrMissingRequiredData, "informe o session_id a auditar")
	}

	run := s.startQuery(ctx, "audit")
	dimensions := domain.CanonicalDimensions
	audits := make([]domain.DimensionAudit, len(dimensions))

	g, gctx := errgroup.WithContext(ctx)
	for i, dimension := range dimensions {
		g.Go(func() error {
			records, unresolved, err := s.resolveRecords(gctx, run, []string{sessionID}, dimension, false)
			if err != nil {
				return err
			}

			audits[i] = domain.DimensionAudit{
				Dimension:  dimension,
				Records:    len(records),
				Unresolved: unresolved,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	audit = &domain.ResolutionAudit{
		SessionID:  sessionID,
		Dimensions: audits,
		AuditedAt:  time.Now().UTC(),
	}

	run.finish(log.Fields{
		"profile_session":    sessionID,
		"profile_unresolved": audit.Unresolved(),
	})

	return audit, nil
}

type validatable interface {
	Validate() error
}

// validateQuery converte erros do validator em ProfilingError. Sessões ausentes
// viram ErrMissingSessions; os demais campos, ErrInvalidParameter.
func validateQuery(query validatable) error {
	err := query.Validate()
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return NewProfilingError(ErrInvalidParameter, apiErrors.ErrInvalidFormat, err.Error())
	}

	code := apiErrors.ErrInvalidFormat
	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Field() == "SessionIDs" {
			return NewProfilingError(ErrMissingSessions, apiErrors.ErrMissingRequiredData, "informe ao menos um session_id")
		}
		if fe.Tag() == "required" {
			code = apiErrors.ErrMissingRequiredData
		}
		details = append(details, fmt.Sprintf("%s=%q", fe.Field(), fmt.Sprint(fe.Value())))
	}

	return NewProfilingError(ErrInvalidParameter, code, strings.Join(details, ", "))
}

// storeError preserva tanto ErrStoreUnavailable quanto a causa original na cadeia
func storeError(err error, details string) error {
	return NewProfilingError(fmt.Errorf("%w: %w", ErrStoreUnavailable, err), apiErrors.ErrDatabaseOperation, details)
}
