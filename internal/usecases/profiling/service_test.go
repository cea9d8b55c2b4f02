package profiling

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-profile-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func requireProfilingError(t *testing.T, err error, sentinel error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var profilingErr *ProfilingError
	require.True(t, errors.As(err, &profilingErr), "esperado ProfilingError, obtido %T", err)
	assert.Equal(t, code, profilingErr.Code)
}

// valuesByGroup indexa a distribuição por grupo e valor de atributo
func valuesByGroup(results []domain.CategoryGroupResult) map[string]map[string]float64 {
	indexed := make(map[string]map[string]float64, len(results))
	for _, group := range results {
		values := make(map[string]float64, len(group.Distribution))
		for _, entry := range group.Distribution {
			values[entry.AttributeValue] = entry.Value
		}
		indexed[group.Category] = values
	}
	return indexed
}

func TestService_Distribution_ReferenceExample(t *testing.T) {
	tests := []struct {
		name           string
		excludeUnknown bool
		expected       []domain.CategoryGroupResult
	}{
		{
			name:           "Com valor desconhecido",
			excludeUnknown: false,
			expected: []domain.CategoryGroupResult{
				{
					Category: "desks",
					Total:    350,
					Distribution: []domain.DistributionEntry{
						{AttributeValue: domain.DefaultUnknownAttributeValue, Percentage: 57.1, Value: 200},
						{AttributeValue: "elementary", Percentage: 42.9, Value: 150},
					},
				},
			},
		},
		{
			name:           "Sem valor desconhecido",
			excludeUnknown: true,
			expected: []domain.CategoryGroupResult{
				{
					Category: "desks",
					Total:    150,
					Distribution: []domain.DistributionEntry{
						{AttributeValue: "elementary", Percentage: 100, Value: 150},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(deskStore())

			result, err := service.Distribution(context.Background(), domain.DistributionQuery{
				SessionIDs:     []string{"s1"},
				Dimension:      domain.DimensionChildAge,
				Level:          domain.LevelL2,
				Metric:         domain.MetricPaymentAmount,
				ExcludeUnknown: tt.excludeUnknown,
			})

			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("distribuição inesperada (-esperado +obtido):\n%s", diff)
			}
		})
	}
}

func TestService_Distribution_Validation(t *testing.T) {
	valid := domain.DistributionQuery{
		SessionIDs: []string{"s1"},
		Dimension:  domain.DimensionChildAge,
		Level:      domain.LevelL2,
		Metric:     domain.MetricPaymentAmount,
	}

	tests := []struct {
		name     string
		mutate   func(q *domain.DistributionQuery)
		sentinel error
		code     string
	}{
		{
			name:     "Sem sessões",
			mutate:   func(q *domain.DistributionQuery) { q.SessionIDs = nil },
			sentinel: ErrMissingSessions,
			code:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Lista de sessões vazia",
			mutate:   func(q *domain.DistributionQuery) { q.SessionIDs = []string{} },
			sentinel: ErrMissingSessions,
			code:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Identificador de sessão em branco",
			mutate:   func(q *domain.DistributionQuery) { q.SessionIDs = []string{"s1", ""} },
			sentinel: ErrInvalidParameter,
			code:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Nível de agregação desconhecido",
			mutate:   func(q *domain.DistributionQuery) { q.Level = "L4" },
			sentinel: ErrInvalidParameter,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Métrica de reembolso não é exposta",
			mutate:   func(q *domain.DistributionQuery) { q.Metric = "refundAmount" },
			sentinel: ErrInvalidParameter,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Dimensão desconhecida",
			mutate:   func(q *domain.DistributionQuery) { q.Dimension = "income" },
			sentinel: ErrInvalidParameter,
			code:     apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			// Nenhuma leitura deve acontecer para uma consulta inválida
			service := NewService(
				testConfig(),
				mocks.NewMockSessionRepository(ctrl),
				mocks.NewMockProfileRecordRepository(ctrl),
				mocks.NewMockProductRepository(ctrl),
				mocks.NewMockCategoryRepository(ctrl),
			)

			query := valid
			query.SessionIDs = slices.Clone(valid.SessionIDs)
			tt.mutate(&query)

			result, err := service.Distribution(context.Background(), query)
			assert.Nil(t, result)
			requireProfilingError(t, err, tt.sentinel, tt.code)
		})
	}
}

func TestService_Distribution_ExcludeUnknownNeverIncreasesTotals(t *testing.T) {
	service := newTestService(catalogStore())

	for _, level := range []domain.AggregationLevel{domain.LevelL1, domain.LevelL2, domain.LevelL3, domain.LevelProduct} {
		t.Run(string(level), func(t *testing.T) {
			query := domain.DistributionQuery{
				SessionIDs: []string{"s1", "s2"},
				Dimension:  domain.DimensionChildAge,
				Level:      level,
				Metric:     domain.MetricPaymentAmount,
			}

			withUnknown, err := service.Distribution(context.Background(), query)
			require.NoError(t, err)

			query.ExcludeUnknown = true
			withoutUnknown, err := service.Distribution(context.Background(), query)
			require.NoError(t, err)

			totals := make(map[string]float64, len(withUnknown))
			for _, group := range withUnknown {
				totals[group.Category] = group.Total
			}

			for _, group := range withoutUnknown {
				assert.GreaterOrEqual(t, totals[group.Category], group.Total, "grupo %s", group.Category)
				for _, entry := range group.Distribution {
					assert.NotEqual(t, domain.DefaultUnknownAttributeValue, entry.AttributeValue)
				}
			}
		})
	}
}

func TestService_Distribution_SessionUnionIsAdditive(t *testing.T) {
	service := newTestService(catalogStore())

	distribution := func(sessionIDs ...string) map[string]map[string]float64 {
		result, err := service.Distribution(context.Background(), domain.DistributionQuery{
			SessionIDs: sessionIDs,
			Dimension:  domain.DimensionChildAge,
			Level:      domain.LevelL1,
			Metric:     domain.MetricPaymentAmount,
		})
		require.NoError(t, err)
		return valuesByGroup(result)
	}

	first := distribution("s1")
	second := distribution("s2")
	union := distribution("s1", "s2")

	expected := make(map[string]map[string]float64)
	for _, partial := range []map[string]map[string]float64{first, second} {
		for group, values := range partial {
			if expected[group] == nil {
				expected[group] = make(map[string]float64)
			}
			for value, amount := range values {
				expected[group][value] += amount
			}
		}
	}

	if diff := cmp.Diff(expected, union); diff != "" {
		t.Errorf("união de sessões não é aditiva (-esperado +obtido):\n%s", diff)
	}
	assert.Equal(t, 190.0, union["furniture"]["elementary"])
}

func TestService_Distribution_DuplicateSessionsCountOnce(t *testing.T) {
	service := newTestService(catalogStore())

	query := domain.DistributionQuery{
		SessionIDs: []string{"s1"},
		Dimension:  domain.DimensionChildAge,
		Level:      domain.LevelL2,
		Metric:     domain.MetricPaymentAmount,
	}
	single, err := service.Distribution(context.Background(), query)
	require.NoError(t, err)

	query.SessionIDs = []string{"s1", "s1"}
	duplicated, err := service.Distribution(context.Background(), query)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(single, duplicated))
}

func TestService_Distribution_IndependentOfStoreOrder(t *testing.T) {
	query := domain.DistributionQuery{
		SessionIDs: []string{"s2", "s1"},
		Dimension:  domain.DimensionChildAge,
		Level:      domain.LevelL3,
		Metric:     domain.MetricPaymentAmount,
	}

	expected, err := newTestService(catalogStore()).Distribution(context.Background(), query)
	require.NoError(t, err)

	reversed := catalogStore()
	slices.Reverse(reversed.records)
	result, err := newTestService(reversed).Distribution(context.Background(), query)
	require.NoError(t, err)

	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("ordem dos registros alterou o resultado (-esperado +obtido):\n%s", diff)
	}
}

func TestService_Drilldown(t *testing.T) {
	tests := []struct {
		name     string
		query    domain.DrilldownQuery
		validate func(t *testing.T, result *domain.DrilldownResult, err error)
	}{
		{
			name: "L1 reagrega em L2",
			query: domain.DrilldownQuery{
				SessionIDs:  []string{"s1"},
				Dimension:   domain.DimensionChildAge,
				ParentLevel: domain.LevelL1,
				ParentValue: "furniture",
				Metric:      domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, result *domain.DrilldownResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.LevelL1, result.ParentLevel)
				assert.Equal(t, "furniture", result.ParentValue)
				assert.Equal(t, domain.LevelL2, result.ChildLevel)

				require.Len(t, result.Groups, 2)
				assert.Equal(t, "desks", result.Groups[0].Category)
				assert.Equal(t, 290.0, result.Groups[0].Total)
				assert.Equal(t, "chairs", result.Groups[1].Category)
				assert.Equal(t, 40.0, result.Groups[1].Total)
			},
		},
		{
			name: "L3 reagrega por produto",
			query: domain.DrilldownQuery{
				SessionIDs:  []string{"s1"},
				Dimension:   domain.DimensionChildAge,
				ParentLevel: domain.LevelL3,
				ParentValue: "kids-desks",
				Metric:      domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, result *domain.DrilldownResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.LevelProduct, result.ChildLevel)

				require.Len(t, result.Groups, 2)
				assert.Equal(t, "Desk Junior", result.Groups[0].Category)
				assert.Equal(t, 120.0, result.Groups[0].Total)
				assert.Equal(t, "Desk Mini", result.Groups[1].Category)
				assert.Equal(t, 90.0, result.Groups[1].Total)
			},
		},
		{
			name: "Valor pai sem registros retorna grupos vazios",
			query: domain.DrilldownQuery{
				SessionIDs:  []string{"s1", "s2"},
				Dimension:   domain.DimensionChildAge,
				ParentLevel: domain.LevelL1,
				ParentValue: "garden",
				Metric:      domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, result *domain.DrilldownResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.LevelL2, result.ChildLevel)
				assert.NotNil(t, result.Groups)
				assert.Empty(t, result.Groups)
			},
		},
		{
			name: "Nível produto não aceita detalhamento",
			query: domain.DrilldownQuery{
				SessionIDs:  []string{"s1"},
				Dimension:   domain.DimensionChildAge,
				ParentLevel: domain.LevelProduct,
				ParentValue: "Desk Junior",
				Metric:      domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, result *domain.DrilldownResult, err error) {
				assert.Nil(t, result)
				requireProfilingError(t, err, ErrInvalidParameter, apiErrors.ErrInvalidFormat)
			},
		},
		{
			name: "Valor pai ausente é rejeitado",
			query: domain.DrilldownQuery{
				SessionIDs:  []string{"s1"},
				Dimension:   domain.DimensionChildAge,
				ParentLevel: domain.LevelL1,
				Metric:      domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, result *domain.DrilldownResult, err error) {
				assert.Nil(t, result)
				requireProfilingError(t, err, ErrInvalidParameter, apiErrors.ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestService(catalogStore()).Drilldown(context.Background(), tt.query)
			tt.validate(t, result, err)
		})
	}
}

// Descer de L1 para L2 e depois de L2 para L3 equivale a agregar direto em L3
// restrito ao par (L1, L2) escolhido
func TestService_Drilldown_ConsistentWithDeeperAggregation(t *testing.T) {
	ctx := context.Background()
	service := newTestService(catalogStore())
	sessions := []string{"s1", "s2"}

	// Hierarquia L2 → L3 do catálogo de teste
	childrenOf := map[string][]string{
		"desks":  {"kids-desks", "adult-desks"},
		"chairs": {"office-chairs"},
	}

	first, err := service.Drilldown(ctx, domain.DrilldownQuery{
		SessionIDs:  sessions,
		Dimension:   domain.DimensionChildAge,
		ParentLevel: domain.LevelL1,
		ParentValue: "furniture",
		Metric:      domain.MetricPaymentAmount,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.Groups)

	deeper, err := service.Distribution(ctx, domain.DistributionQuery{
		SessionIDs: sessions,
		Dimension:  domain.DimensionChildAge,
		Level:      domain.LevelL3,
		Metric:     domain.MetricPaymentAmount,
	})
	require.NoError(t, err)

	for _, group := range first.Groups {
		second, err := service.Drilldown(ctx, domain.DrilldownQuery{
			SessionIDs:  sessions,
			Dimension:   domain.DimensionChildAge,
			ParentLevel: first.ChildLevel,
			ParentValue: group.Category,
			Metric:      domain.MetricPaymentAmount,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.LevelL3, second.ChildLevel)

		expected := make([]domain.CategoryGroupResult, 0)
		for _, candidate := range deeper {
			if slices.Contains(childrenOf[group.Category], candidate.Category) {
				expected = append(expected, candidate)
			}
		}

		if diff := cmp.Diff(expected, second.Groups); diff != "" {
			t.Errorf("drill-down de %s diverge da agregação em L3 (-esperado +obtido):\n%s", group.Category, diff)
		}

		var childTotal float64
		for _, child := range second.Groups {
			childTotal += child.Total
		}
		assert.Equal(t, group.Total, childTotal, "total de %s", group.Category)
	}
}

func TestService_IntegratedView(t *testing.T) {
	tests := []struct {
		name     string
		store    func() *memoryStore
		query    domain.IntegratedQuery
		validate func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore)
	}{
		{
			name:  "Três dimensões na ordem canônica, inclusive sem dados",
			store: catalogStore,
			query: domain.IntegratedQuery{
				SessionIDs: []string{"s1"},
				Level:      domain.LevelL2,
				Value:      "desks",
				Metric:     domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore) {
				expected := []domain.IntegratedDimensionResult{
					{
						Dimension: domain.DimensionChildAge,
						Total:     290,
						Distribution: []domain.DistributionEntry{
							{AttributeValue: "elementary", Percentage: 41.4, Value: 120},
							{AttributeValue: "teen", Percentage: 27.6, Value: 80},
							{AttributeValue: "toddler", Percentage: 20.7, Value: 60},
							{AttributeValue: domain.DefaultUnknownAttributeValue, Percentage: 10.3, Value: 30},
						},
					},
					{
						Dimension: domain.DimensionMaritalStatus,
						Total:     300,
						Distribution: []domain.DistributionEntry{
							{AttributeValue: "married", Percentage: 66.7, Value: 200},
							{AttributeValue: "single", Percentage: 33.3, Value: 100},
						},
					},
					{
						Dimension:    domain.DimensionHouseholdSize,
						Total:        0,
						Distribution: []domain.DistributionEntry{},
					},
				}
				if diff := cmp.Diff(expected, results); diff != "" {
					t.Errorf("visão integrada inesperada (-esperado +obtido):\n%s", diff)
				}
			},
		},
		{
			name: "Registros não resolvidos não afetam as demais dimensões",
			store: func() *memoryStore {
				return catalogStore().
					addProduct("p6", "Orphan Desk", "c9").
					addRecord("s1", "p6", domain.DimensionMaritalStatus, "married", 1000).
					addRecord("s1", "p9", domain.DimensionHouseholdSize, "4", 500)
			},
			query: domain.IntegratedQuery{
				SessionIDs: []string{"s1"},
				Level:      domain.LevelL2,
				Value:      "desks",
				Metric:     domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore) {
				require.Len(t, results, 3)
				assert.Equal(t, 290.0, results[0].Total)
				assert.Equal(t, 300.0, results[1].Total)
				assert.Equal(t, 0.0, results[2].Total)
			},
		},
		{
			name:  "Sem valor desconhecido",
			store: catalogStore,
			query: domain.IntegratedQuery{
				SessionIDs:     []string{"s1"},
				Level:          domain.LevelL2,
				Value:          "desks",
				Metric:         domain.MetricPaymentAmount,
				ExcludeUnknown: true,
			},
			validate: func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore) {
				require.Len(t, results, 3)
				assert.Equal(t, 260.0, results[0].Total)
				for _, entry := range results[0].Distribution {
					assert.NotEqual(t, domain.DefaultUnknownAttributeValue, entry.AttributeValue)
				}
			},
		},
		{
			name:  "Resolvedor compartilhado entre dimensões",
			store: catalogStore,
			query: domain.IntegratedQuery{
				SessionIDs: []string{"s1"},
				Level:      domain.LevelL1,
				Value:      "furniture",
				Metric:     domain.MetricPaymentAmount,
			},
			validate: func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore) {
				require.Len(t, results, 3)
				assert.Equal(t, 5, store.productLookups)
				assert.Equal(t, 4, store.categoryLookups)
			},
		},
		{
			name:  "Seleção sem correspondência retorna totais zerados",
			store: catalogStore,
			query: domain.IntegratedQuery{
				SessionIDs: []string{"s1", "s2"},
				Level:      domain.LevelProduct,
				Value:      "Unknown Product",
				Metric:     domain.MetricPaymentCount,
			},
			validate: func(t *testing.T, results []domain.IntegratedDimensionResult, store *memoryStore) {
				require.Len(t, results, 3)
				for i, result := range results {
					assert.Equal(t, domain.CanonicalDimensions[i], result.Dimension)
					assert.Equal(t, 0.0, result.Total)
					assert.Empty(t, result.Distribution)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store()
			results, err := newTestService(store).IntegratedView(context.Background(), tt.query)
			require.NoError(t, err)
			tt.validate(t, results, store)
		})
	}
}

func TestService_StoreFailures(t *testing.T) {
	errConnection := errors.New("connection reset by peer")

	type repos struct {
		records    *mocks.MockProfileRecordRepository
		products   *mocks.MockProductRepository
		categories *mocks.MockCategoryRepository
		sessions   *mocks.MockSessionRepository
	}

	tests := []struct {
		name  string
		setup func(r repos)
		run   func(s *Service) (any, error)
	}{
		{
			name: "Distribuição com falha na coleta",
			setup: func(r repos) {
				r.records.EXPECT().ListBySessionAndDimension(gomock.Any(), "s1", domain.DimensionChildAge).Return(nil, errConnection)
			},
			run: func(s *Service) (any, error) {
				return s.Distribution(context.Background(), domain.DistributionQuery{
					SessionIDs: []string{"s1"},
					Dimension:  domain.DimensionChildAge,
					Level:      domain.LevelL2,
					Metric:     domain.MetricPaymentAmount,
				})
			},
		},
		{
			name: "Drill-down com falha na leitura de categoria",
			setup: func(r repos) {
				r.records.EXPECT().ListBySessionAndDimension(gomock.Any(), "s1", domain.DimensionChildAge).
					Return([]*domain.ProfileRecord{{ID: "r1", ProductID: "p1", AttributeValue: "teen", PaymentAmount: 10}}, nil)
				r.products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", Name: "Desk", CategoryID: "c1"}, nil)
				r.categories.EXPECT().GetCategoryByID(gomock.Any(), "c1").Return(nil, errConnection)
			},
			run: func(s *Service) (any, error) {
				return s.Drilldown(context.Background(), domain.DrilldownQuery{
					SessionIDs:  []string{"s1"},
					Dimension:   domain.DimensionChildAge,
					ParentLevel: domain.LevelL1,
					ParentValue: "furniture",
					Metric:      domain.MetricPaymentAmount,
				})
			},
		},
		{
			name: "Visão integrada falha inteira quando uma dimensão falha",
			setup: func(r repos) {
				r.records.EXPECT().ListBySessionAndDimension(gomock.Any(), "s1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dimension domain.Dimension) ([]*domain.ProfileRecord, error) {
						if dimension == domain.DimensionMaritalStatus {
							return nil, errConnection
						}
						return []*domain.ProfileRecord{}, nil
					}).
					AnyTimes()
			},
			run: func(s *Service) (any, error) {
				return s.IntegratedView(context.Background(), domain.IntegratedQuery{
					SessionIDs: []string{"s1"},
					Level:      domain.LevelL2,
					Value:      "desks",
					Metric:     domain.MetricPaymentAmount,
				})
			},
		},
		{
			name: "Hierarquia com falha na listagem",
			setup: func(r repos) {
				r.categories.EXPECT().ListCategories(gomock.Any()).Return(nil, errConnection)
			},
			run: func(s *Service) (any, error) {
				return s.CategoryHierarchy(context.Background())
			},
		},
		{
			name: "Listagem de sessões com falha",
			setup: func(r repos) {
				r.sessions.EXPECT().ListSessions(gomock.Any(), 0).Return(nil, errConnection)
			},
			run: func(s *Service) (any, error) {
				return s.ListSessions(context.Background(), nil)
			},
		},
		{
			name: "Auditoria com falha na leitura de produto",
			setup: func(r repos) {
				r.records.EXPECT().ListBySessionAndDimension(gomock.Any(), "s1", gomock.Any()).
					Return([]*domain.ProfileRecord{{ID: "r1", ProductID: "p1"}}, nil).
					AnyTimes()
				r.products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(nil, errConnection).AnyTimes()
			},
			run: func(s *Service) (any, error) {
				return s.AuditSession(context.Background(), "s1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			r := repos{
				records:    mocks.NewMockProfileRecordRepository(ctrl),
				products:   mocks.NewMockProductRepository(ctrl),
				categories: mocks.NewMockCategoryRepository(ctrl),
				sessions:   mocks.NewMockSessionRepository(ctrl),
			}
			tt.setup(r)

			service := NewService(testConfig(), r.sessions, r.records, r.products, r.categories)
			_, err := tt.run(service)

			requireProfilingError(t, err, ErrStoreUnavailable, apiErrors.ErrDatabaseOperation)
			assert.ErrorIs(t, err, errConnection)
		})
	}
}

func TestService_AvailableGroups(t *testing.T) {
	service := newTestService(catalogStore())

	tests := []struct {
		level    domain.AggregationLevel
		expected []string
	}{
		{level: domain.LevelL1, expected: []string{"furniture", "toys"}},
		{level: domain.LevelL2, expected: []string{"blocks", "chairs", "desks"}},
		{level: domain.LevelL3, expected: []string{"adult-desks", "kids-desks", "office-chairs", "wooden-blocks"}},
		{level: domain.LevelProduct, expected: []string{"Blocks", "Chair", "Desk Junior", "Desk Mini", "Desk Pro"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			groups, err := service.AvailableGroups(context.Background(), domain.GroupsQuery{
				SessionIDs: []string{"s1", "s2"},
				Dimension:  domain.DimensionChildAge,
				Level:      tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, groups)
		})
	}

	t.Run("Sem sessões", func(t *testing.T) {
		groups, err := service.AvailableGroups(context.Background(), domain.GroupsQuery{
			Dimension: domain.DimensionChildAge,
			Level:     domain.LevelL1,
		})
		assert.Nil(t, groups)
		requireProfilingError(t, err, ErrMissingSessions, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_CategoryHierarchy(t *testing.T) {
	store := catalogStore().
		addCategory("c5", "furniture", "desks", "kids-desks").
		addCategory("c6", "furniture", "chairs", "office-chairs")

	paths, err := newTestService(store).CategoryHierarchy(context.Background())
	require.NoError(t, err)

	expected := []domain.CategoryPath{
		{Level1: "furniture", Level2: "chairs", Level3: "office-chairs"},
		{Level1: "furniture", Level2: "desks", Level3: "adult-desks"},
		{Level1: "furniture", Level2: "desks", Level3: "kids-desks"},
		{Level1: "toys", Level2: "blocks", Level3: "wooden-blocks"},
	}
	assert.Equal(t, expected, paths)
}

func TestService_ListSessions(t *testing.T) {
	store := catalogStore()
	store.sessions = []*domain.Session{
		{ID: "s2", Complete: false},
		{ID: "s1", Complete: true},
	}
	service := newTestService(store)

	t.Run("Todas as sessões", func(t *testing.T) {
		sessions, err := service.ListSessions(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "s2", sessions[0].ID)
	})

	t.Run("Sessões informadas sem repetição", func(t *testing.T) {
		sessions, err := service.ListSessions(context.Background(), []string{"s1", "s1"})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "s1", sessions[0].ID)
		assert.True(t, sessions[0].Complete)
	})
}

func TestService_AuditSession(t *testing.T) {
	store := catalogStore().
		addProduct("p6", "Orphan Desk", "c9").
		addRecord("s1", "p6", domain.DimensionHouseholdSize, "3", 10).
		addRecord("s1", "p9", domain.DimensionHouseholdSize, "4", 20).
		addRecord("s1", "p1", domain.DimensionHouseholdSize, "2", 30)
	service := newTestService(store)

	audit, err := service.AuditSession(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "s1", audit.SessionID)
	assert.False(t, audit.AuditedAt.IsZero())
	assert.Equal(t, []domain.DimensionAudit{
		{Dimension: domain.DimensionChildAge, Records: 6, Unresolved: 0},
		{Dimension: domain.DimensionMaritalStatus, Records: 2, Unresolved: 0},
		{Dimension: domain.DimensionHouseholdSize, Records: 3, Unresolved: 2},
	}, audit.Dimensions)
	assert.Equal(t, 2, audit.Unresolved())

	t.Run("Sessão em branco", func(t *testing.T) {
		audit, err := service.AuditSession(context.Background(), " ")
		assert.Nil(t, audit)
		requireProfilingError(t, err, ErrMissingSessions, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_Dimensions(t *testing.T) {
	service := newTestService(newMemoryStore())

	dimensions := service.Dimensions()
	assert.Equal(t, []domain.Dimension{
		domain.DimensionChildAge,
		domain.DimensionMaritalStatus,
		domain.DimensionHouseholdSize,
	}, dimensions)

	dimensions[0] = "changed"
	assert.Equal(t, domain.DimensionChildAge, domain.CanonicalDimensions[0])
}
