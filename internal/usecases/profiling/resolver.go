package profiling

import (
	"context"
	"sync"

	"github.com/vfg2006/customer-profile-api/infrastructure/repository"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Resolution é o resultado explícito da resolução registro → produto → categoria.
// Found é falso quando o produto ou a categoria não existem mais.
type Resolution struct {
	Entity domain.ResolvedEntity
	Found  bool
}

// EntityResolver memoriza produtos e categorias por identificador durante uma
// única consulta. Resultados "não encontrado" também ficam em cache; erros de
// leitura não. Seguro para uso concorrente entre as dimensões da visão integrada.
type EntityResolver struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository

	mu              sync.Mutex
	productCache    map[string]*domain.Product
	categoryCache   map[string]*domain.Category
	productLookups  int
	categoryLookups int

	inflight singleflight.Group
}

func NewEntityResolver(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) *EntityResolver {
	return &EntityResolver{
		products:      products,
		categories:    categories,
		productCache:  make(map[string]*domain.Product),
		categoryCache: make(map[string]*domain.Category),
	}
}

// Resolve achata o produto e a categoria referenciados pelo registro
func (r *EntityResolver) Resolve(ctx context.Context, productID string) (Resolution, error) {
	product, err := memoize(ctx, r, "product:"+productID, r.productCache, productID, &r.productLookups,
		func(ctx context.Context) (*domain.Product, error) {
			entityLookups.WithLabelValues("product").Inc()
			return r.products.GetProductByID(ctx, productID)
		})
	if err != nil {
		return Resolution{}, err
	}
	if product == nil {
		return Resolution{}, nil
	}

	category, err := memoize(ctx, r, "category:"+product.CategoryID, r.categoryCache, product.CategoryID, &r.categoryLookups,
		func(ctx context.Context) (*domain.Category, error) {
			entityLookups.WithLabelValues("category").Inc()
			return r.categories.GetCategoryByID(ctx, product.CategoryID)
		})
	if err != nil {
		return Resolution{}, err
	}
	if category == nil {
		return Resolution{}, nil
	}

	return Resolution{
		Entity: domain.ResolvedEntity{
			ProductName: product.Name,
			Level1:      category.Level1,
			Level2:      category.Level2,
			Level3:      category.Level3,
		},
		Found: true,
	}, nil
}

// ResolveAll resolve cada produto distinto referenciado pelos registros.
// O mapa retornado é indexado pelo ID do produto.
func (r *EntityResolver) ResolveAll(ctx context.Context, records []*domain.ProfileRecord) (map[string]Resolution, error) {
	resolutions := make(map[string]Resolution)
	for _, record := range records {
		if _, done := resolutions[record.ProductID]; done {
			continue
		}

		resolution, err := r.Resolve(ctx, record.ProductID)
		if err != nil {
			return nil, err
		}
		resolutions[record.ProductID] = resolution
	}
	return resolutions, nil
}

// Lookups retorna quantas leituras de produto e de categoria chegaram ao repositório
func (r *EntityResolver) Lookups() (products int, categories int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.productLookups, r.categoryLookups
}

// memoize consulta o cache e, na ausência, faz uma única leitura por chave
// mesmo com chamadas concorrentes.
func memoize[T any](
	ctx context.Context,
	r *EntityResolver,
	flightKey string,
	cache map[string]*T,
	id string,
	counter *int,
	fetch func(context.Context) (*T, error),
) (*T, error) {
	r.mu.Lock()
	cached, ok := cache[id]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	v, err, _ := r.inflight.Do(flightKey, func() (interface{}, error) {
		r.mu.Lock()
		if cached, ok := cache[id]; ok {
			r.mu.Unlock()
			return cached, nil
		}
		*counter++
		r.mu.Unlock()

		entity, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		cache[id] = entity
		r.mu.Unlock()
		return entity, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*T), nil
}
