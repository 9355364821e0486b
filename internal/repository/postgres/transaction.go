package postgres

import (
	"context"
	"database/sql"
	"time"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a ledger row. There is deliberately no Update or Delete:
// the ledger is append-only.
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (request_id, amount_cents, type, external_ref, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, tx.RequestID, tx.AmountCents, tx.Type,
		tx.ExternalRef, tx.Status, time.Now()).Scan(&tx.ID, &tx.CreatedOn)
}

func (r *transactionRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Transaction, error) {
	query := `SELECT id, request_id, amount_cents, type, external_ref, status, created_on
	          FROM transactions WHERE request_id = $1 ORDER BY created_on ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.RequestID, &tx.AmountCents, &tx.Type, &tx.ExternalRef, &tx.Status, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
