package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/customer-profile-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-profile-api/internal/domain"
)

//go:generate mockgen -source=profile_record.go -destination=mocks/profile_record.go -package=mocks

const (
	profileRecordsTable = "profile_records pr"
)

type ProfileRecordRepository interface {
	ListBySessionAndDimension(ctx context.Context, sessionID string, dimension domain.Dimension) ([]*domain.ProfileRecord, error)
}

type profileRecordRepository struct {
	conn *postgres.Connection
}

func NewProfileRecordRepository(conn *postgres.Connection) ProfileRecordRepository {
	return &profileRecordRepository{
		conn: conn,
	}
}

// ListBySessionAndDimension usa o índice (session_id, dimension)
func (r *profileRecordRepository) ListBySessionAndDimension(
	ctx context.Context,
	sessionID string,
	dimension domain.Dimension,
) ([]*domain.ProfileRecord, error) {
	query, args, err := squirrel.
		Select(
			"pr.id",
			"pr.session_id",
			"pr.product_id",
			"pr.dimension",
			"pr.attribute_value",
			"pr.payment_amount",
			"pr.payment_count",
			"pr.payment_quantity",
			"pr.refund_amount",
			"pr.refund_count",
			"pr.refund_quantity",
		).
		From(profileRecordsTable).
		Where(squirrel.Eq{"pr.session_id": sessionID, "pr.dimension": string(dimension)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, "erro ao buscar registros de perfil")
	}
	defer rows.Close()

	records := make([]*domain.ProfileRecord, 0)
	for rows.Next() {
		record, err := r.scanProfileRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro de perfil")
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapQueryError(err, "erro durante a iteração de linhas")
	}

	return records, nil
}

func (r *profileRecordRepository) scanProfileRecord(rows *sql.Rows) (*domain.ProfileRecord, error) {
	record := &domain.ProfileRecord{}

	var dimension string
	err := rows.Scan(
		&record.ID,
		&record.SessionID,
		&record.ProductID,
		&dimension,
		&record.AttributeValue,
		&record.PaymentAmount,
		&record.PaymentCount,
		&record.PaymentQuantity,
		&record.RefundAmount,
		&record.RefundCount,
		&record.RefundQuantity,
	)
	if err != nil {
		return nil, err
	}

	record.Dimension = domain.Dimension(dimension)
	return record, nil
}
