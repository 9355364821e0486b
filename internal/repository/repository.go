package repository

import (
	"context"

	"renthive-backend/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)

	// TransitionStatus atomically moves the request from one of the `from`
	// statuses to `to`. It returns false when the row no longer holds any of
	// the `from` statuses, which is how a lost race is detected.
	TransitionStatus(ctx context.Context, id int32, from []domain.RequestStatus, to domain.RequestStatus) (bool, error)

	// Complete performs the Returned -> Completed transition and records the
	// rating in the same write, so a racing complete cannot double-rate.
	Complete(ctx context.Context, id int32, rating *int32) (bool, error)

	ListByRequester(ctx context.Context, requesterID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)

	// RatingSummary recomputes the mean rating and count over all completed,
	// rated requests for an item. Always a full-set aggregate, never cached.
	RatingSummary(ctx context.Context, itemID int32) (float64, int32, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	UpdateRating(ctx context.Context, id int32, rating float64, reviews int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Transaction, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	GetByRequest(ctx context.Context, requestID int32) (*domain.Dispute, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
