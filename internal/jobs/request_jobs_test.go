package jobs_test

import (
	"testing"
	"time"

	"renthive-backend/internal/config"
	"renthive-backend/internal/jobs"
	"renthive-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newTestRunner(t *testing.T) (*jobs.JobRunner, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}

	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			ExpirePendingRequests: "0 0 * * * *",
			PendingTTLHours:       24,
		},
	}
	runner := jobs.NewJobRunner(db, postgres.NewStore(db), cfg)
	return runner, mock, func() { db.Close() }
}

func TestExpirePendingRequests(t *testing.T) {
	t.Run("CancelsStaleRequests", func(t *testing.T) {
		runner, mock, cleanup := newTestRunner(t)
		defer cleanup()

		stale := time.Now().Add(-25 * time.Hour)
		rows := sqlmock.NewRows([]string{"id", "requester_id", "item_id", "requested_at"}).
			AddRow(1, 5, 10, stale).
			AddRow(2, 6, 11, stale)

		mock.ExpectQuery("UPDATE rental_requests").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		runner.ExpirePendingRequests()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NothingToExpire", func(t *testing.T) {
		runner, mock, cleanup := newTestRunner(t)
		defer cleanup()

		mock.ExpectQuery("UPDATE rental_requests").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "item_id", "requested_at"}))

		runner.ExpirePendingRequests()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// The sweep's WHERE clause only matches Pending rows, so a second run
	// over the same data set finds nothing. Modelled here as an empty
	// result on the repeat run.
	t.Run("IdempotentRepeatRun", func(t *testing.T) {
		runner, mock, cleanup := newTestRunner(t)
		defer cleanup()

		stale := time.Now().Add(-25 * time.Hour)
		mock.ExpectQuery("UPDATE rental_requests").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "item_id", "requested_at"}).AddRow(1, 5, 10, stale))
		mock.ExpectQuery("UPDATE rental_requests").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "item_id", "requested_at"}))

		runner.ExpirePendingRequests()
		runner.ExpirePendingRequests()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
