package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository"

	"github.com/lib/pq"
)

type disputeRepository struct {
	db *sql.DB
}

func NewDisputeRepository(db *sql.DB) repository.DisputeRepository {
	return &disputeRepository{db: db}
}

func (r *disputeRepository) Create(ctx context.Context, d *domain.Dispute) error {
	query := `INSERT INTO disputes (request_id, reporter_id, reason, evidence_url, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, d.RequestID, d.ReporterID, d.Reason,
		d.EvidenceURL, d.Status, time.Now()).Scan(&d.ID, &d.CreatedOn)
	// request_id carries a unique constraint: at most one dispute per request.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: dispute already opened for request %d", domain.ErrInvalidTransition, d.RequestID)
	}
	return err
}

func (r *disputeRepository) GetByRequest(ctx context.Context, requestID int32) (*domain.Dispute, error) {
	d := &domain.Dispute{}
	query := `SELECT id, request_id, reporter_id, reason, evidence_url, status, created_on
	          FROM disputes WHERE request_id = $1`
	err := r.db.QueryRowContext(ctx, query, requestID).Scan(&d.ID, &d.RequestID, &d.ReporterID,
		&d.Reason, &d.EvidenceURL, &d.Status, &d.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
