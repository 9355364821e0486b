package service

import (
	"context"

	"renthive-backend/internal/domain"
)

// RequestService is the rental request lifecycle engine. Every method is a
// named transition from the lifecycle table; each validates the actor and the
// current status, commits the status write atomically and then runs the
// transition's side effects.
type RequestService interface {
	Create(ctx context.Context, requesterID, itemID int32, startDate, endDate string, totalPriceCents, depositCents int32) (*domain.RentalRequest, error)
	Approve(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error)
	Reject(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error)
	Cancel(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error)
	SimulatePayment(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error)
	ConfirmHandover(ctx context.Context, actorID, requestID int32, code string) (*domain.RentalRequest, error)
	ConfirmReturn(ctx context.Context, actorID, requestID int32, code string) (*domain.RentalRequest, error)
	Complete(ctx context.Context, actorID, requestID int32, rating *int32) (*domain.RentalRequest, error)
	OpenDispute(ctx context.Context, actorID, requestID int32, reason string, evidenceURL *string) (*domain.RentalRequest, error)
	Get(ctx context.Context, actorID, requestID int32) (*domain.RequestDetail, error)
	ListByRequester(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)
	ListByOwner(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)
}

// RatingService recomputes an item's displayed rating from the full set of
// completed, rated requests. The recomputation is the source of truth.
type RatingService interface {
	RecomputeItemRating(ctx context.Context, itemID int32) error
}

type LedgerService interface {
	GetTransactions(ctx context.Context, actorID, requestID int32) ([]domain.Transaction, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// EmailService mirrors lifecycle notifications over email, best effort.
type EmailService interface {
	SendRequestReceivedNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error
	SendApprovalNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error
	SendRejectionNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error
	SendPaymentConfirmation(ctx context.Context, requesterEmail, itemName string, amountCents int32) error
	SendReturnNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error
	SendCompletionNotification(ctx context.Context, requesterEmail, itemName string) error
	SendDisputeNotification(ctx context.Context, email, itemName, reporterName string) error
}
