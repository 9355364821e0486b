package postgres

import (
	"database/sql"

	"renthive-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.ItemRepository
	repository.UserRepository
	repository.TransactionRepository
	repository.DisputeRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RequestRepository:      NewRequestRepository(db),
		ItemRepository:         NewItemRepository(db),
		UserRepository:         NewUserRepository(db),
		TransactionRepository:  NewTransactionRepository(db),
		DisputeRepository:      NewDisputeRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
