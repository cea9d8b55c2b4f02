package profiling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-profile-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestEntityResolver_ResolveAll(t *testing.T) {
	records := []*domain.ProfileRecord{
		{ID: "r1", ProductID: "p1"},
		{ID: "r2", ProductID: "p2"},
		{ID: "r3", ProductID: "p1"},
		{ID: "r4", ProductID: "p3"},
		{ID: "r5", ProductID: "p2"},
		{ID: "r6", ProductID: "p3"},
		{ID: "r7", ProductID: "p4"},
	}

	tests := []struct {
		name     string
		setup    func(products *mocks.MockProductRepository, categories *mocks.MockCategoryRepository)
		validate func(t *testing.T, resolutions map[string]Resolution, err error, resolver *EntityResolver)
	}{
		{
			name: "Cada produto e categoria distintos são lidos uma única vez",
			setup: func(products *mocks.MockProductRepository, categories *mocks.MockCategoryRepository) {
				products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", Name: "Desk Junior", CategoryID: "c1"}, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p2").Return(&domain.Product{ID: "p2", Name: "Desk Mini", CategoryID: "c1"}, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p3").Return(&domain.Product{ID: "p3", Name: "Chair", CategoryID: "c2"}, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p4").Return(&domain.Product{ID: "p4", Name: "Blocks", CategoryID: "c2"}, nil).Times(1)

				categories.EXPECT().GetCategoryByID(gomock.Any(), "c1").Return(&domain.Category{ID: "c1", Level1: "furniture", Level2: "desks", Level3: "kids-desks"}, nil).Times(1)
				categories.EXPECT().GetCategoryByID(gomock.Any(), "c2").Return(&domain.Category{ID: "c2", Level1: "furniture", Level2: "chairs", Level3: "office-chairs"}, nil).Times(1)
			},
			validate: func(t *testing.T, resolutions map[string]Resolution, err error, resolver *EntityResolver) {
				require.NoError(t, err)
				require.Len(t, resolutions, 4)

				assert.Equal(t, Resolution{
					Entity: domain.ResolvedEntity{ProductName: "Desk Junior", Level1: "furniture", Level2: "desks", Level3: "kids-desks"},
					Found:  true,
				}, resolutions["p1"])
				assert.Equal(t, "chairs", resolutions["p4"].Entity.Level2)

				products, categories := resolver.Lookups()
				assert.Equal(t, 4, products)
				assert.Equal(t, 2, categories)
			},
		},
		{
			name: "Produto inexistente fica em cache como não encontrado",
			setup: func(products *mocks.MockProductRepository, categories *mocks.MockCategoryRepository) {
				products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", Name: "Desk Junior", CategoryID: "c1"}, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p2").Return(nil, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p3").Return(nil, nil).Times(1)
				products.EXPECT().GetProductByID(gomock.Any(), "p4").Return(&domain.Product{ID: "p4", Name: "Blocks", CategoryID: "c9"}, nil).Times(1)

				categories.EXPECT().GetCategoryByID(gomock.Any(), "c1").Return(&domain.Category{ID: "c1", Level1: "furniture", Level2: "desks", Level3: "kids-desks"}, nil).Times(1)
				categories.EXPECT().GetCategoryByID(gomock.Any(), "c9").Return(nil, nil).Times(1)
			},
			validate: func(t *testing.T, resolutions map[string]Resolution, err error, resolver *EntityResolver) {
				require.NoError(t, err)
				assert.True(t, resolutions["p1"].Found)
				assert.False(t, resolutions["p2"].Found)
				assert.False(t, resolutions["p3"].Found)
				assert.False(t, resolutions["p4"].Found, "categoria inexistente também torna o registro não resolvido")
				assert.Equal(t, domain.ResolvedEntity{}, resolutions["p2"].Entity)
			},
		},
		{
			name: "Erro de leitura é propagado",
			setup: func(products *mocks.MockProductRepository, categories *mocks.MockCategoryRepository) {
				products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(nil, errors.New("connection refused")).Times(1)
			},
			validate: func(t *testing.T, resolutions map[string]Resolution, err error, resolver *EntityResolver) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
				assert.Nil(t, resolutions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			products := mocks.NewMockProductRepository(ctrl)
			categories := mocks.NewMockCategoryRepository(ctrl)
			tt.setup(products, categories)

			resolver := NewEntityResolver(products, categories)
			resolutions, err := resolver.ResolveAll(context.Background(), records)
			tt.validate(t, resolutions, err, resolver)
		})
	}
}

func TestEntityResolver_ConcurrentResolveSharesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)

	products := mocks.NewMockProductRepository(ctrl)
	categories := mocks.NewMockCategoryRepository(ctrl)

	products.EXPECT().GetProductByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", Name: "Desk Junior", CategoryID: "c1"}, nil).Times(1)
	categories.EXPECT().GetCategoryByID(gomock.Any(), "c1").Return(&domain.Category{ID: "c1", Level1: "furniture", Level2: "desks", Level3: "kids-desks"}, nil).Times(1)

	resolver := NewEntityResolver(products, categories)

	var wg sync.WaitGroup
	resolutions := make([]Resolution, 16)
	for i := range resolutions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolution, err := resolver.Resolve(context.Background(), "p1")
			assert.NoError(t, err)
			resolutions[i] = resolution
		}()
	}
	wg.Wait()

	for _, resolution := range resolutions {
		assert.True(t, resolution.Found)
		assert.Equal(t, "desks", resolution.Entity.Level2)
	}

	productLookups, categoryLookups := resolver.Lookups()
	assert.Equal(t, 1, productLookups)
	assert.Equal(t, 1, categoryLookups)
}
