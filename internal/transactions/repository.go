package transactions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists transaction records.
type Repository interface {
	Create(ctx context.Context, record Record) error
	Get(ctx context.Context, id string) (Record, error)
}

// PostgresRepository stores records in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a transaction record.
func (r *PostgresRepository) Create(ctx context.Context, record Record) error {
	recordID, err := uuid.Parse(record.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO transactions
        (id, kind, amount_minor, user_id, memo, authorization_id, status, message, error_code, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		recordID, record.Kind, record.AmountMinor, record.UserID, record.Memo,
		record.Authorization, record.Status, record.Message, record.ErrorCode, record.CreatedAt.UTC())
	return err
}

// Get fetches a transaction record by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Record, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return Record{}, err
	}
	row := r.db.QueryRow(ctx, `SELECT id, kind, amount_minor, user_id, memo, authorization_id, status, message, error_code, created_at
        FROM transactions WHERE id = $1`, recordID)

	var rec Record
	var idVal uuid.UUID
	var createdAt time.Time
	if err := row.Scan(&idVal, &rec.Kind, &rec.AmountMinor, &rec.UserID, &rec.Memo,
		&rec.Authorization, &rec.Status, &rec.Message, &rec.ErrorCode, &createdAt); err != nil {
		return Record{}, err
	}
	rec.ID = idVal.String()
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}
