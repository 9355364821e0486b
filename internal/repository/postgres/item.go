package postgres

import (
	"context"
	"database/sql"
	"errors"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	item := &domain.Item{}
	query := `SELECT id, owner_id, name, price_per_day_cents, deposit_cents, is_available, rating, reviews_count, created_on, updated_on
	          FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.OwnerID, &item.Name,
		&item.PricePerDayCents, &item.DepositCents, &item.IsAvailable, &item.Rating,
		&item.ReviewsCount, &item.CreatedOn, &item.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	query := `UPDATE items SET is_available = $1, updated_on = NOW() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepository) UpdateRating(ctx context.Context, id int32, rating float64, reviews int32) error {
	query := `UPDATE items SET rating = $1, reviews_count = $2, updated_on = NOW() WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, rating, reviews, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
