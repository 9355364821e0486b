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

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, item_id, requester_id, owner_id, requester_name, owner_name, start_date, end_date, total_price_cents, deposit_cents, status, handover_code, return_code, rating_given, requested_at, updated_on`

func scanRequest(row interface{ Scan(...any) error }, rq *domain.RentalRequest) error {
	return row.Scan(&rq.ID, &rq.ItemID, &rq.RequesterID, &rq.OwnerID, &rq.RequesterName, &rq.OwnerName,
		&rq.StartDate, &rq.EndDate, &rq.TotalPriceCents, &rq.DepositCents, &rq.Status,
		&rq.HandoverCode, &rq.ReturnCode, &rq.RatingGiven, &rq.RequestedAt, &rq.UpdatedOn)
}

func (r *requestRepository) Create(ctx context.Context, rq *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (item_id, requester_id, owner_id, requester_name, owner_name, start_date, end_date, total_price_cents, deposit_cents, status, handover_code, return_code, requested_at, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id, requested_at`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rq.ItemID, rq.RequesterID, rq.OwnerID, rq.RequesterName, rq.OwnerName,
		rq.StartDate, rq.EndDate, rq.TotalPriceCents, rq.DepositCents, rq.Status,
		rq.HandoverCode, rq.ReturnCode, now, now).Scan(&rq.ID, &rq.RequestedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	rq := &domain.RentalRequest{}
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	err := scanRequest(r.db.QueryRowContext(ctx, query, id), rq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rq, nil
}

func (r *requestRepository) TransitionStatus(ctx context.Context, id int32, from []domain.RequestStatus, to domain.RequestStatus) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}
	query := `UPDATE rental_requests SET status = $1, updated_on = NOW() WHERE id = $2 AND status = ANY($3)`
	res, err := r.db.ExecContext(ctx, query, to, id, pq.Array(fromStrs))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *requestRepository) Complete(ctx context.Context, id int32, rating *int32) (bool, error) {
	query := `UPDATE rental_requests SET status = $1, rating_given = $2, updated_on = NOW() WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, domain.RequestStatusCompleted, rating, id, domain.RequestStatusReturned)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return r.list(ctx, "requester_id", requesterID, status, page, pageSize)
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return r.list(ctx, "owner_id", ownerID, status, page, pageSize)
}

func (r *requestRepository) list(ctx context.Context, partyColumn string, partyID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE ` + partyColumn + ` = $1`

	args := []interface{}{partyID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY requested_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		var rq domain.RentalRequest
		if err := scanRequest(rows, &rq); err != nil {
			return nil, 0, err
		}
		requests = append(requests, rq)
	}
	return requests, count, rows.Err()
}

func (r *requestRepository) RatingSummary(ctx context.Context, itemID int32) (float64, int32, error) {
	var avg float64
	var count int32
	query := `SELECT COALESCE(AVG(rating_given), 0), COUNT(rating_given)
	          FROM rental_requests WHERE item_id = $1 AND status = $2 AND rating_given IS NOT NULL`
	err := r.db.QueryRowContext(ctx, query, itemID, domain.RequestStatusCompleted).Scan(&avg, &count)
	return avg, count, err
}
