package service

import (
	"context"
	"errors"
	"fmt"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/logger"
	"renthive-backend/internal/repository"
	"renthive-backend/internal/security"
	"renthive-backend/internal/utils"

	"github.com/google/uuid"
)

// payableStatuses: AwaitingPayment only appears in records seeded before the
// explicit approve step existed; nothing here produces it.
var payableStatuses = []domain.RequestStatus{domain.RequestStatusApproved, domain.RequestStatusAwaitingPayment}

// disputableStatuses covers every non-terminal, non-disputed status.
var disputableStatuses = []domain.RequestStatus{
	domain.RequestStatusPending,
	domain.RequestStatusApproved,
	domain.RequestStatusAwaitingPayment,
	domain.RequestStatusPaid,
	domain.RequestStatusInHand,
	domain.RequestStatusReturned,
}

type requestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	txRepo      repository.TransactionRepository
	disputeRepo repository.DisputeRepository
	noteRepo    repository.NotificationRepository
	ratingSvc   RatingService
	emailSvc    EmailService
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	disputeRepo repository.DisputeRepository,
	noteRepo repository.NotificationRepository,
	ratingSvc RatingService,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		txRepo:      txRepo,
		disputeRepo: disputeRepo,
		noteRepo:    noteRepo,
		ratingSvc:   ratingSvc,
		emailSvc:    emailSvc,
	}
}

func (s *requestService) Create(ctx context.Context, requesterID, itemID int32, startDate, endDate string, totalPriceCents, depositCents int32) (*domain.RentalRequest, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("%w: item %d is not available", domain.ErrValidation, itemID)
	}
	if item.OwnerID == requesterID {
		return nil, fmt.Errorf("%w: cannot rent your own item", domain.ErrValidation)
	}
	if _, err := utils.InclusiveDays(startDate, endDate); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if totalPriceCents <= 0 {
		return nil, fmt.Errorf("%w: total price must be positive", domain.ErrValidation)
	}
	if depositCents < 0 {
		return nil, fmt.Errorf("%w: deposit must not be negative", domain.ErrValidation)
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	// Owner is derived from the item at creation time and frozen thereafter.
	owner, err := s.userRepo.GetByID(ctx, item.OwnerID)
	if err != nil {
		return nil, err
	}

	handoverCode, returnCode, err := security.GenerateCodePair()
	if err != nil {
		return nil, err
	}

	rq := &domain.RentalRequest{
		ItemID:          itemID,
		RequesterID:     requesterID,
		OwnerID:         owner.ID,
		RequesterName:   requester.Name,
		OwnerName:       owner.Name,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalPriceCents: totalPriceCents,
		DepositCents:    depositCents,
		Status:          domain.RequestStatusPending,
		HandoverCode:    handoverCode,
		ReturnCode:      returnCode,
	}
	if err := s.requestRepo.Create(ctx, rq); err != nil {
		return nil, err
	}

	s.notify(ctx, &domain.Notification{
		TargetUserID:    owner.ID,
		EventType:       domain.NotificationEventNewRequest,
		Title:           "New Rental Request",
		Message:         fmt.Sprintf("%s requested to rent %s.", requester.Name, item.Name),
		Link:            "/requests",
		RelatedItemID:   &item.ID,
		RelatedUserID:   &requester.ID,
		RelatedUserName: requester.Name,
	})
	if err := s.emailSvc.SendRequestReceivedNotification(ctx, owner.Email, requester.Name, item.Name); err != nil {
		logger.Error("Failed to send request email", "request_id", rq.ID, "error", err)
	}

	return rq, nil
}

func (s *requestService) Approve(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can approve", domain.ErrForbidden)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, []domain.RequestStatus{domain.RequestStatusPending}, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not pending", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusApproved

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    rq.RequesterID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Request Approved",
		Message:         fmt.Sprintf("Your request for %s was approved.", itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &rq.OwnerID,
		RelatedUserName: rq.OwnerName,
	})
	if requester, err := s.userRepo.GetByID(ctx, rq.RequesterID); err == nil {
		if err := s.emailSvc.SendApprovalNotification(ctx, requester.Email, itemName, rq.OwnerName); err != nil {
			logger.Error("Failed to send approval email", "request_id", rq.ID, "error", err)
		}
	}

	return rq, nil
}

func (s *requestService) Reject(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can reject", domain.ErrForbidden)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, []domain.RequestStatus{domain.RequestStatusPending}, domain.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not pending", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusRejected

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    rq.RequesterID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Request Rejected",
		Message:         fmt.Sprintf("Your request for %s was rejected.", itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &rq.OwnerID,
		RelatedUserName: rq.OwnerName,
	})
	if requester, err := s.userRepo.GetByID(ctx, rq.RequesterID); err == nil {
		if err := s.emailSvc.SendRejectionNotification(ctx, requester.Email, itemName, rq.OwnerName); err != nil {
			logger.Error("Failed to send rejection email", "request_id", rq.ID, "error", err)
		}
	}

	return rq, nil
}

func (s *requestService) Cancel(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.RequesterID != actorID && rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: actor is neither requester nor owner", domain.ErrForbidden)
	}

	from := []domain.RequestStatus{domain.RequestStatusPending, domain.RequestStatusApproved}
	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, from, domain.RequestStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is neither pending nor approved", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusCancelled

	// No notification: cancellation has no fan-out beyond the status write.
	return rq, nil
}

func (s *requestService) SimulatePayment(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.RequesterID != actorID {
		return nil, fmt.Errorf("%w: only the requester can pay", domain.ErrForbidden)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, payableStatuses, domain.RequestStatusPaid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not awaiting payment", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusPaid

	// Amount is locked at booking time: price plus deposit, both snapshots.
	ref := uuid.New().String()
	payment := &domain.Transaction{
		RequestID:   rq.ID,
		AmountCents: rq.TotalPriceCents + rq.DepositCents,
		Type:        domain.TransactionTypePayment,
		ExternalRef: &ref,
		Status:      domain.TransactionStatusSuccess,
	}
	if err := s.txRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("payment ledger append failed: %w", err)
	}

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    rq.RequesterID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Payment Confirmed",
		Message:         fmt.Sprintf("Payment for %s received. Ready for handover!", itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &rq.OwnerID,
		RelatedUserName: rq.OwnerName,
	})
	if requester, err := s.userRepo.GetByID(ctx, rq.RequesterID); err == nil {
		if err := s.emailSvc.SendPaymentConfirmation(ctx, requester.Email, itemName, payment.AmountCents); err != nil {
			logger.Error("Failed to send payment email", "request_id", rq.ID, "error", err)
		}
	}

	return rq, nil
}

func (s *requestService) ConfirmHandover(ctx context.Context, actorID, requestID int32, code string) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// The receiving party proves possession: only the requester, who is
	// taking the item, may present the handover code.
	if rq.RequesterID != actorID {
		return nil, fmt.Errorf("%w: only the requester can confirm handover", domain.ErrForbidden)
	}
	if rq.Status != domain.RequestStatusPaid {
		return nil, fmt.Errorf("%w: request %d is not paid", domain.ErrInvalidTransition, requestID)
	}
	if code != rq.HandoverCode {
		return nil, fmt.Errorf("%w: handover code", domain.ErrCodeMismatch)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, []domain.RequestStatus{domain.RequestStatusPaid}, domain.RequestStatusInHand)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not paid", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusInHand

	if err := s.itemRepo.SetAvailability(ctx, rq.ItemID, false); err != nil {
		return nil, fmt.Errorf("failed to mark item unavailable: %w", err)
	}

	return rq, nil
}

func (s *requestService) ConfirmReturn(ctx context.Context, actorID, requestID int32, code string) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// Mirror of handover: the owner receives the item back and presents
	// the return code.
	if rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can confirm return", domain.ErrForbidden)
	}
	if rq.Status != domain.RequestStatusInHand {
		return nil, fmt.Errorf("%w: request %d is not in hand", domain.ErrInvalidTransition, requestID)
	}
	if code != rq.ReturnCode {
		return nil, fmt.Errorf("%w: return code", domain.ErrCodeMismatch)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, []domain.RequestStatus{domain.RequestStatusInHand}, domain.RequestStatusReturned)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not in hand", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusReturned

	if err := s.itemRepo.SetAvailability(ctx, rq.ItemID, true); err != nil {
		return nil, fmt.Errorf("failed to mark item available: %w", err)
	}

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    rq.OwnerID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Item Returned",
		Message:         fmt.Sprintf("%s has returned %s.", rq.RequesterName, itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &rq.RequesterID,
		RelatedUserName: rq.RequesterName,
	})
	if owner, err := s.userRepo.GetByID(ctx, rq.OwnerID); err == nil {
		if err := s.emailSvc.SendReturnNotification(ctx, owner.Email, rq.RequesterName, itemName); err != nil {
			logger.Error("Failed to send return email", "request_id", rq.ID, "error", err)
		}
	}

	return rq, nil
}

func (s *requestService) Complete(ctx context.Context, actorID, requestID int32, rating *int32) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can complete", domain.ErrForbidden)
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	ok, err := s.requestRepo.Complete(ctx, requestID, rating)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is not returned", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusCompleted
	rq.RatingGiven = rating

	// Settlement bookkeeping: pay the owner out, release the deposit.
	payout := &domain.Transaction{
		RequestID:   rq.ID,
		AmountCents: rq.TotalPriceCents,
		Type:        domain.TransactionTypePayout,
		Status:      domain.TransactionStatusSuccess,
	}
	if err := s.txRepo.Create(ctx, payout); err != nil {
		return nil, fmt.Errorf("payout ledger append failed: %w", err)
	}
	if rq.DepositCents > 0 {
		refund := &domain.Transaction{
			RequestID:   rq.ID,
			AmountCents: rq.DepositCents,
			Type:        domain.TransactionTypeRefund,
			Status:      domain.TransactionStatusSuccess,
		}
		if err := s.txRepo.Create(ctx, refund); err != nil {
			return nil, fmt.Errorf("refund ledger append failed: %w", err)
		}
	}

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    rq.RequesterID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Rental Completed",
		Message:         fmt.Sprintf("Thank you for renting %s!", itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &rq.OwnerID,
		RelatedUserName: rq.OwnerName,
	})
	if requester, err := s.userRepo.GetByID(ctx, rq.RequesterID); err == nil {
		if err := s.emailSvc.SendCompletionNotification(ctx, requester.Email, itemName); err != nil {
			logger.Error("Failed to send completion email", "request_id", rq.ID, "error", err)
		}
	}

	if rating != nil {
		if err := s.ratingSvc.RecomputeItemRating(ctx, rq.ItemID); err != nil {
			return nil, fmt.Errorf("rating recompute failed: %w", err)
		}
	}

	return rq, nil
}

func (s *requestService) OpenDispute(ctx context.Context, actorID, requestID int32, reason string, evidenceURL *string) (*domain.RentalRequest, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.RequesterID != actorID && rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: actor is neither requester nor owner", domain.ErrForbidden)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: dispute reason is required", domain.ErrValidation)
	}

	ok, err := s.requestRepo.TransitionStatus(ctx, requestID, disputableStatuses, domain.RequestStatusDisputed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %d is terminal or already disputed", domain.ErrInvalidTransition, requestID)
	}
	rq.Status = domain.RequestStatusDisputed

	dispute := &domain.Dispute{
		RequestID:   rq.ID,
		ReporterID:  actorID,
		Reason:      reason,
		EvidenceURL: evidenceURL,
		Status:      domain.DisputeStatusOpen,
	}
	if err := s.disputeRepo.Create(ctx, dispute); err != nil {
		return nil, err
	}

	// The counter-party gets notified, not the reporter.
	otherID := rq.OwnerID
	reporterID, reporterName := rq.RequesterID, rq.RequesterName
	if actorID == rq.OwnerID {
		otherID = rq.RequesterID
		reporterID, reporterName = rq.OwnerID, rq.OwnerName
	}

	itemName := s.itemName(ctx, rq)
	s.notify(ctx, &domain.Notification{
		TargetUserID:    otherID,
		EventType:       domain.NotificationEventRequestUpdate,
		Title:           "Dispute Opened",
		Message:         fmt.Sprintf("A dispute has been opened for %s.", itemName),
		Link:            "/requests",
		RelatedItemID:   &rq.ItemID,
		RelatedUserID:   &reporterID,
		RelatedUserName: reporterName,
	})
	if other, err := s.userRepo.GetByID(ctx, otherID); err == nil {
		if err := s.emailSvc.SendDisputeNotification(ctx, other.Email, itemName, reporterName); err != nil {
			logger.Error("Failed to send dispute email", "request_id", rq.ID, "error", err)
		}
	}

	return rq, nil
}

func (s *requestService) Get(ctx context.Context, actorID, requestID int32) (*domain.RequestDetail, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.RequesterID != actorID && rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: actor is neither requester nor owner", domain.ErrForbidden)
	}

	txs, err := s.txRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	detail := &domain.RequestDetail{RentalRequest: *rq, Transactions: txs}
	dispute, err := s.disputeRepo.GetByRequest(ctx, requestID)
	if err == nil {
		detail.Dispute = dispute
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return detail, nil
}

func (s *requestService) ListByRequester(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return s.requestRepo.ListByRequester(ctx, userID, status, page, pageSize)
}

func (s *requestService) ListByOwner(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return s.requestRepo.ListByOwner(ctx, userID, status, page, pageSize)
}

// notify persists a notification record, best effort. A failure is logged
// and never fails the transition that triggered it.
func (s *requestService) notify(ctx context.Context, n *domain.Notification) {
	if err := s.noteRepo.Create(ctx, n); err != nil {
		logger.Error("Failed to create notification", "target_user_id", n.TargetUserID, "title", n.Title, "error", err)
	}
}

// itemName fetches the item's display name for notification text; the
// owner's name stands in if the catalog lookup fails.
func (s *requestService) itemName(ctx context.Context, rq *domain.RentalRequest) string {
	item, err := s.itemRepo.GetByID(ctx, rq.ItemID)
	if err != nil {
		return rq.OwnerName + "'s item"
	}
	return item.Name
}
