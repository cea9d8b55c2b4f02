package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto do *sql.DB usado pelos repositórios
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var _ Conn = (*Connection)(nil)
