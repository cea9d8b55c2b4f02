package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-profile-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	sessionsTable = "profile_sessions ps"
)

type SessionRepository interface {
	// ListSessions retorna as sessões mais recentes primeiro; limit <= 0 retorna todas
	ListSessions(ctx context.Context, limit int) ([]*domain.Session, error)
	GetSessionsByIDs(ctx context.Context, sessionIDs []string) ([]*domain.Session, error)
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) baseQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("ps.id, ps.period_start, ps.period_end, ps.uploaded_at, ps.files").
		From(sessionsTable).
		OrderBy("ps.uploaded_at DESC", "ps.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *sessionRepository) ListSessions(ctx context.Context, limit int) ([]*domain.Session, error) {
	builder := r.baseQuery()
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.querySessions(ctx, query, args...)
}

func (r *sessionRepository) GetSessionsByIDs(ctx context.Context, sessionIDs []string) ([]*domain.Session, error) {
	if len(sessionIDs) == 0 {
		return []*domain.Session{}, nil
	}

	query, args, err := r.baseQuery().
		Where("ps.id = ANY(?)", pq.Array(sessionIDs)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.querySessions(ctx, query, args...)
}

func (r *sessionRepository) querySessions(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao listar sessões")
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear sessão")
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapQueryError(err, "erro durante a iteração de linhas")
	}

	return sessions, nil
}

func (r *sessionRepository) scanSession(rows *sql.Rows) (*domain.Session, error) {
	session := &domain.Session{}

	var filesJSON []byte
	err := rows.Scan(
		&session.ID,
		&session.PeriodStart,
		&session.PeriodEnd,
		&session.UploadedAt,
		&filesJSON,
	)
	if err != nil {
		return nil, err
	}

	session.Files = make([]domain.SessionFile, 0)
	if len(filesJSON) > 0 {
		if err := json.Unmarshal(filesJSON, &session.Files); err != nil {
			return nil, errors.Wrapf(err, "arquivos inválidos na sessão %s", session.ID)
		}
	}

	session.Complete = len(session.MissingDimensions()) == 0
	return session, nil
}
