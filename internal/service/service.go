package service

import (
	"context"
	"fmt"

	"libtrack-backend/internal/domain"
)

type CatalogService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	AddBook(ctx context.Context, book *domain.Book) error
}

type MemberService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	AddUser(ctx context.Context, user *domain.User) error
	UpdateUserStatus(ctx context.Context, id int32, status domain.UserStatus) error
	UserCheckouts(ctx context.Context, userID int32) (active, history []domain.CheckoutWithBook, err error)
}

// CirculationService enforces the book/checkout state machine. Both mutating
// operations run as a single transaction: either the book status and the
// checkout row change together, or neither does.
type CirculationService interface {
	Checkout(ctx context.Context, bookID, userID int32, dueDate, notes string) (*domain.Checkout, error)
	Return(ctx context.Context, bookID int32, condition domain.CheckoutCondition) (*domain.Checkout, error)
	CurrentCheckout(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error)
	History(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error)
}

// DashboardService derives aggregate views from the store. Every call
// recomputes from scratch; there is no cached state to invalidate.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]domain.ActivityEntry, error)
	PopularBooks(ctx context.Context) ([]domain.PopularBook, error)
}

// storeErr marks err as a store-level failure so callers can distinguish it
// from precondition violations.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
