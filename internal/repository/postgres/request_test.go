package postgres_test

import (
	"context"
	"testing"
	"time"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var requestColumns = []string{
	"id", "item_id", "requester_id", "owner_id", "requester_name", "owner_name",
	"start_date", "end_date", "total_price_cents", "deposit_cents", "status",
	"handover_code", "return_code", "rating_given", "requested_at", "updated_on",
}

func TestRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rq := &domain.RentalRequest{
			ItemID:          10,
			RequesterID:     1,
			OwnerID:         2,
			RequesterName:   "Alice",
			OwnerName:       "Bob",
			StartDate:       "2026-09-01",
			EndDate:         "2026-09-03",
			TotalPriceCents: 4500,
			DepositCents:    5000,
			Status:          domain.RequestStatusPending,
			HandoverCode:    "ABC234",
			ReturnCode:      "XYZ789",
		}

		mock.ExpectQuery("INSERT INTO rental_requests").
			WithArgs(rq.ItemID, rq.RequesterID, rq.OwnerID, rq.RequesterName, rq.OwnerName,
				rq.StartDate, rq.EndDate, rq.TotalPriceCents, rq.DepositCents, rq.Status,
				rq.HandoverCode, rq.ReturnCode, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "requested_at"}).AddRow(1, time.Now()))

		err := repo.Create(ctx, rq)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rq.ID)
	})
}

func TestRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(requestColumns).
			AddRow(1, 10, 1, 2, "Alice", "Bob", "2026-09-01", "2026-09-03", 4500, 5000, "Paid", "ABC234", "XYZ789", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rq, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusPaid, rq.Status)
		assert.Nil(t, rq.RatingGiven)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(requestColumns))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestRepository_TransitionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()
	from := []domain.RequestStatus{domain.RequestStatusPending}

	t.Run("Won", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_requests SET status = \\$1").
			WithArgs(domain.RequestStatusApproved, int32(1), pq.Array([]string{"Pending"})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.TransitionStatus(ctx, 1, from, domain.RequestStatusApproved)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Lost", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_requests SET status = \\$1").
			WithArgs(domain.RequestStatusApproved, int32(1), pq.Array([]string{"Pending"})).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.TransitionStatus(ctx, 1, from, domain.RequestStatusApproved)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRequestRepository_Complete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()
	rating := int32(5)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_requests SET status = \\$1, rating_given = \\$2").
			WithArgs(domain.RequestStatusCompleted, &rating, int32(1), domain.RequestStatusReturned).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Complete(ctx, 1, &rating)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NotReturned", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_requests SET status = \\$1, rating_given = \\$2").
			WithArgs(domain.RequestStatusCompleted, nil, int32(1), domain.RequestStatusReturned).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Complete(ctx, 1, nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRequestRepository_RatingSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating_given\\), 0\\), COUNT\\(rating_given\\)").
			WithArgs(int32(10), domain.RequestStatusCompleted).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.0, 3))

		avg, count, err := repo.RatingSummary(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, 4.0, avg)
		assert.Equal(t, int32(3), count)
	})

	t.Run("NoRatings", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating_given\\), 0\\), COUNT\\(rating_given\\)").
			WithArgs(int32(11), domain.RequestStatusCompleted).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0))

		avg, count, err := repo.RatingSummary(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, avg)
		assert.Equal(t, int32(0), count)
	})
}

func TestRequestRepository_ListByRequester(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(requestColumns).
			AddRow(2, 11, 1, 3, "Alice", "Carol", "2026-09-05", "2026-09-06", 3000, 0, "Pending", "DEF456", "GHJ234", nil, time.Now(), time.Now()).
			AddRow(1, 10, 1, 2, "Alice", "Bob", "2026-09-01", "2026-09-03", 4500, 5000, "Completed", "ABC234", "XYZ789", 5, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE requester_id = \\$1 ORDER BY requested_at DESC").
			WithArgs(int32(1), int32(20), int32(0)).
			WillReturnRows(rows)

		requests, total, err := repo.ListByRequester(ctx, 1, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), total)
		assert.Len(t, requests, 2)
		assert.Equal(t, int32(2), requests[0].ID)
	})

	t.Run("FilteredByStatus", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs(int32(1), "Pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(requestColumns).
			AddRow(2, 11, 1, 3, "Alice", "Carol", "2026-09-05", "2026-09-06", 3000, 0, "Pending", "DEF456", "GHJ234", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE requester_id = \\$1 AND status = \\$2").
			WithArgs(int32(1), "Pending", int32(20), int32(0)).
			WillReturnRows(rows)

		requests, total, err := repo.ListByRequester(ctx, 1, "Pending", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, requests, 1)
	})
}
