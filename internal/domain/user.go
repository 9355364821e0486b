package domain

import "time"

// User is the narrow identity surface the engine needs: display name for
// denormalized snapshots and email for the best-effort notification mirror.
// Account creation and credential checks are handled elsewhere.
type User struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
