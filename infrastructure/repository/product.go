package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-profile-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

const (
	productsTable = "products p"
)

type ProductRepository interface {
	// GetProductByID retorna (nil, nil) quando o produto não existe
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.external_id, p.name, p.category_id").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	product := &domain.Product{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.ExternalID,
		&product.Name,
		&product.CategoryID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapQueryError(err, "erro ao buscar produto")
	}

	return product, nil
}
