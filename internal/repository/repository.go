package repository

import (
	"context"
	"database/sql"

	"libtrack-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)

	// GetForUpdate reads the book inside tx with a row lock, so the caller's
	// precondition check and subsequent writes are atomic with respect to
	// other transactions on the same book.
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Book, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.BookStatus) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error)
	UpdateStatus(ctx context.Context, id int32, status domain.UserStatus) error
}

type CheckoutRepository interface {
	// Insert creates an open checkout row inside tx. The checkout date is
	// assigned by the store.
	Insert(ctx context.Context, tx *sql.Tx, co *domain.Checkout) error

	// LockOpenByBook resolves the open checkout for a book inside tx with a
	// row lock: return_date null, most recent checkout_date first. Returns
	// sql.ErrNoRows when the book has no open checkout.
	LockOpenByBook(ctx context.Context, tx *sql.Tx, bookID int32) (*domain.Checkout, error)

	// Close stamps the checkout's return date and condition inside tx and
	// reports the stamped return date.
	Close(ctx context.Context, tx *sql.Tx, id int32, condition domain.CheckoutCondition) (string, error)

	// CurrentByBook returns the open checkout joined with the borrower's
	// name, or nil when the book is not out.
	CurrentByBook(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error)
	HistoryByBook(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error)
	ActiveByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error)
	HistoryByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error)
}

type StatsRepository interface {
	CountBooks(ctx context.Context) (int32, error)
	CountBooksByStatus(ctx context.Context, status domain.BookStatus) (int32, error)
	CountActiveBorrowers(ctx context.Context) (int32, error)
	CountOverdue(ctx context.Context) (int32, error)
	RecentActivity(ctx context.Context, limit int32) ([]domain.ActivityEntry, error)
	PopularBooks(ctx context.Context, limit int32) ([]domain.PopularBook, error)
}
