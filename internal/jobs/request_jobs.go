package jobs

import (
	"context"
	"time"

	"renthive-backend/internal/logger"
)

// ExpirePendingRequests cancels rental requests that have sat in Pending
// longer than the configured TTL. This is a maintenance sweep, not a
// party-initiated cancel: it only ever touches Pending rows and fires none
// of the notification side effects of a normal cancel. Re-running it is a
// no-op for rows already cancelled, so the sweep is idempotent.
func (jr *JobRunner) ExpirePendingRequests() {
	jr.runWithRecovery("ExpirePendingRequests", func() {
		ctx := context.Background()

		ttl := time.Duration(jr.config.Scheduler.PendingTTLHours) * time.Hour
		threshold := time.Now().Add(-ttl)

		query := `
			UPDATE rental_requests
			SET status = 'Cancelled',
			    updated_on = NOW()
			WHERE status = 'Pending'
			  AND requested_at < $1
			RETURNING id, requester_id, item_id, requested_at
		`

		rows, err := jr.db.QueryContext(ctx, query, threshold)
		if err != nil {
			logger.Error("Failed to expire pending requests", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var expired struct {
				ID          int32
				RequesterID int32
				ItemID      int32
				RequestedAt time.Time
			}
			if err := rows.Scan(&expired.ID, &expired.RequesterID, &expired.ItemID, &expired.RequestedAt); err != nil {
				logger.Error("Failed to scan expired request", "error", err)
				continue
			}
			count++
			logger.Debug("Cancelled expired request",
				"request_id", expired.ID,
				"requester_id", expired.RequesterID,
				"item_id", expired.ItemID,
				"requested_at", expired.RequestedAt)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired requests", "error", err)
			return
		}

		logger.Info("Expired pending requests", "count", count, "older_than_hours", jr.config.Scheduler.PendingTTLHours)
	})
}
