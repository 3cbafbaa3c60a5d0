package http

import (
	"context"

	"libtrack-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockCatalogService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockCatalogService) AddBook(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockMemberService) ListUsersWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWithOpenCount), args.Error(1)
}

func (m *MockMemberService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockMemberService) AddUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockMemberService) UpdateUserStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMemberService) UserCheckouts(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, []domain.CheckoutWithBook, error) {
	args := m.Called(ctx, userID)
	var active, history []domain.CheckoutWithBook
	if args.Get(0) != nil {
		active = args.Get(0).([]domain.CheckoutWithBook)
	}
	if args.Get(1) != nil {
		history = args.Get(1).([]domain.CheckoutWithBook)
	}
	return active, history, args.Error(2)
}

type MockCirculationService struct {
	mock.Mock
}

func (m *MockCirculationService) Checkout(ctx context.Context, bookID, userID int32, dueDate, notes string) (*domain.Checkout, error) {
	args := m.Called(ctx, bookID, userID, dueDate, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}

func (m *MockCirculationService) Return(ctx context.Context, bookID int32, condition domain.CheckoutCondition) (*domain.Checkout, error) {
	args := m.Called(ctx, bookID, condition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}

func (m *MockCirculationService) CurrentCheckout(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutWithBorrower), args.Error(1)
}

func (m *MockCirculationService) History(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckoutWithBorrower), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) RecentActivity(ctx context.Context) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *MockDashboardService) PopularBooks(ctx context.Context) ([]domain.PopularBook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularBook), args.Error(1)
}
