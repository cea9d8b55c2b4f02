package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/customer-profile-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

// Connection encapsula o pool do database/sql e aplica o timeout de consulta do banco
type Connection struct {
	*sql.DB
	queryTimeout time.Duration
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db, queryTimeout: cfg.QueryTimeout}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// WithTimeout devolve um contexto limitado pelo timeout de consulta configurado.
// Sem timeout configurado, o contexto original é mantido.
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}
