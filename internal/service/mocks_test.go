package service

import (
	"context"
	"database/sql"

	"libtrack-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Book, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) SetStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.BookStatus) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWithOpenCount), args.Error(1)
}
func (m *MockUserRepo) UpdateStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockCheckoutRepo
type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) Insert(ctx context.Context, tx *sql.Tx, co *domain.Checkout) error {
	args := m.Called(ctx, tx, co)
	return args.Error(0)
}
func (m *MockCheckoutRepo) LockOpenByBook(ctx context.Context, tx *sql.Tx, bookID int32) (*domain.Checkout, error) {
	args := m.Called(ctx, tx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) Close(ctx context.Context, tx *sql.Tx, id int32, condition domain.CheckoutCondition) (string, error) {
	args := m.Called(ctx, tx, id, condition)
	return args.String(0), args.Error(1)
}
func (m *MockCheckoutRepo) CurrentByBook(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutWithBorrower), args.Error(1)
}
func (m *MockCheckoutRepo) HistoryByBook(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutWithBorrower), args.Error(1)
}
func (m *MockCheckoutRepo) ActiveByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutWithBook), args.Error(1)
}
func (m *MockCheckoutRepo) HistoryByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutWithBook), args.Error(1)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountBooks(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountBooksByStatus(ctx context.Context, status domain.BookStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountActiveBorrowers(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountOverdue(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) RecentActivity(ctx context.Context, limit int32) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}
func (m *MockStatsRepo) PopularBooks(ctx context.Context, limit int32) ([]domain.PopularBook, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularBook), args.Error(1)
}
