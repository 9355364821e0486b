package service_test

import (
	"context"

	"renthive-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRequestRepo) TransitionStatus(ctx context.Context, id int32, from []domain.RequestStatus, to domain.RequestStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) Complete(ctx context.Context, id int32, rating *int32) (bool, error) {
	args := m.Called(ctx, id, rating)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) ListByRequester(ctx context.Context, requesterID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	args := m.Called(ctx, requesterID, status, page, pageSize)
	return args.Get(0).([]domain.RentalRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockRequestRepo) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	args := m.Called(ctx, ownerID, status, page, pageSize)
	return args.Get(0).([]domain.RentalRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockRequestRepo) RatingSummary(ctx context.Context, itemID int32) (float64, int32, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(float64), args.Get(1).(int32), args.Error(2)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockItemRepo) UpdateRating(ctx context.Context, id int32, rating float64, reviews int32) error {
	args := m.Called(ctx, id, rating, reviews)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockDisputeRepo
type MockDisputeRepo struct {
	mock.Mock
}

func (m *MockDisputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisputeRepo) GetByRequest(ctx context.Context, requestID int32) (*domain.Dispute, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispute), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockRatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RecomputeItemRating(ctx context.Context, itemID int32) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestReceivedNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error {
	args := m.Called(ctx, ownerEmail, requesterName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendApprovalNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error {
	args := m.Called(ctx, requesterEmail, itemName, ownerName)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error {
	args := m.Called(ctx, requesterEmail, itemName, ownerName)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentConfirmation(ctx context.Context, requesterEmail, itemName string, amountCents int32) error {
	args := m.Called(ctx, requesterEmail, itemName, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error {
	args := m.Called(ctx, ownerEmail, requesterName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendCompletionNotification(ctx context.Context, requesterEmail, itemName string) error {
	args := m.Called(ctx, requesterEmail, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendDisputeNotification(ctx context.Context, email, itemName, reporterName string) error {
	args := m.Called(ctx, email, itemName, reporterName)
	return args.Error(0)
}
