package domain

import "time"

// Item is the narrow collaborator surface the lifecycle engine needs from
// the catalog: ownership, availability, daily rate, deposit and the rating
// aggregate it maintains. Catalog search and editing live elsewhere.
type Item struct {
	ID               int32     `json:"id"`
	OwnerID          int32     `json:"owner_id"`
	Name             string    `json:"name"`
	PricePerDayCents int32     `json:"price_per_day_cents"`
	DepositCents     int32     `json:"deposit_cents"`
	IsAvailable      bool      `json:"is_available"`
	Rating           float64   `json:"rating"`
	ReviewsCount     int32     `json:"reviews_count"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}
