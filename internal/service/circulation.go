package service

import (
	"context"
	"database/sql"
	"errors"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository"
)

type circulationService struct {
	db           *sql.DB
	bookRepo     repository.BookRepository
	userRepo     repository.UserRepository
	checkoutRepo repository.CheckoutRepository
}

func NewCirculationService(
	db *sql.DB,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	checkoutRepo repository.CheckoutRepository,
) CirculationService {
	return &circulationService{
		db:           db,
		bookRepo:     bookRepo,
		userRepo:     userRepo,
		checkoutRepo: checkoutRepo,
	}
}

// txOptions makes the precondition check and the writes that follow it
// atomic with respect to concurrent transactions on the same book. Combined
// with the FOR UPDATE row lock, two concurrent checkouts of one book cannot
// both pass the AVAILABLE check.
var txOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}

func (s *circulationService) Checkout(ctx context.Context, bookID, userID int32, dueDate, notes string) (co *domain.Checkout, err error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	tx, err := s.db.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	book, err := s.bookRepo.GetForUpdate(ctx, tx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, storeErr(err)
	}
	if book.Status != domain.BookStatusAvailable {
		return nil, domain.ErrBookNotAvailable
	}

	if err = s.bookRepo.SetStatus(ctx, tx, bookID, domain.BookStatusCheckedOut); err != nil {
		return nil, storeErr(err)
	}

	co = &domain.Checkout{BookID: bookID, UserID: userID, DueDate: dueDate}
	if notes != "" {
		co.Notes = &notes
	}
	if err = s.checkoutRepo.Insert(ctx, tx, co); err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr(err)
	}

	logger.Info("book checked out", "book_id", bookID, "user_id", userID, "due_date", dueDate)
	return co, nil
}

func (s *circulationService) Return(ctx context.Context, bookID int32, condition domain.CheckoutCondition) (co *domain.Checkout, err error) {
	tx, err := s.db.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Lock the book row first so checkout and return take locks in the same
	// order. A missing book means no open checkout can exist for it.
	if _, err = s.bookRepo.GetForUpdate(ctx, tx, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoActiveCheckout
		}
		return nil, storeErr(err)
	}

	// The open checkout row is the authoritative signal, not the book status.
	co, err = s.checkoutRepo.LockOpenByBook(ctx, tx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoActiveCheckout
		}
		return nil, storeErr(err)
	}

	returnDate, err := s.checkoutRepo.Close(ctx, tx, co.ID, condition)
	if err != nil {
		return nil, storeErr(err)
	}
	if err = s.bookRepo.SetStatus(ctx, tx, bookID, domain.BookStatusAvailable); err != nil {
		return nil, storeErr(err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr(err)
	}

	co.ReturnDate = &returnDate
	co.Condition = &condition

	logger.Info("book returned", "book_id", bookID, "checkout_id", co.ID, "condition", condition)
	return co, nil
}

func (s *circulationService) CurrentCheckout(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error) {
	co, err := s.checkoutRepo.CurrentByBook(ctx, bookID)
	if err != nil {
		return nil, storeErr(err)
	}
	return co, nil
}

func (s *circulationService) History(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error) {
	history, err := s.checkoutRepo.HistoryByBook(ctx, bookID)
	if err != nil {
		return nil, storeErr(err)
	}
	return history, nil
}
