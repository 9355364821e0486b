package service

import (
	"context"
	"fmt"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository"
)

type ledgerService struct {
	txRepo      repository.TransactionRepository
	requestRepo repository.RequestRepository
}

func NewLedgerService(txRepo repository.TransactionRepository, requestRepo repository.RequestRepository) LedgerService {
	return &ledgerService{txRepo: txRepo, requestRepo: requestRepo}
}

func (s *ledgerService) GetTransactions(ctx context.Context, actorID, requestID int32) ([]domain.Transaction, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rq.RequesterID != actorID && rq.OwnerID != actorID {
		return nil, fmt.Errorf("%w: actor is neither requester nor owner", domain.ErrForbidden)
	}
	return s.txRepo.ListByRequest(ctx, requestID)
}
