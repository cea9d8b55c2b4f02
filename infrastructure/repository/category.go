package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-profile-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

//go:generate mockgen -source=category.go -destination=mocks/category.go -package=mocks

const (
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	// GetCategoryByID retorna (nil, nil) quando a categoria não existe
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.level1, c.level2, c.level3").
		From(categoriesTable).
		Where(squirrel.Eq{"c.id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	category := &domain.Category{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Level1,
		&category.Level2,
		&category.Level3,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapQueryError(err, "erro ao buscar categoria")
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.level1, c.level2, c.level3").
		From(categoriesTable).
		OrderBy("c.level1 ASC", "c.level2 ASC", "c.level3 ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao listar categorias")
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Level1, &category.Level2, &category.Level3); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear categoria")
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapQueryError(err, "erro durante a iteração de linhas")
	}

	return categories, nil
}
