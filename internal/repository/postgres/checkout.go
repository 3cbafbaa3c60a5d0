package postgres

import (
	"context"
	"database/sql"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type checkoutRepository struct {
	db *sql.DB
}

func NewCheckoutRepository(db *sql.DB) repository.CheckoutRepository {
	return &checkoutRepository{db: db}
}

const checkoutColumns = `id, book_id, user_id, checkout_date, due_date, return_date, condition, notes, created_at, updated_at`

func (r *checkoutRepository) Insert(ctx context.Context, tx *sql.Tx, co *domain.Checkout) error {
	query := `INSERT INTO checkouts (book_id, user_id, due_date, notes)
	          VALUES ($1, $2, $3, $4) RETURNING id, checkout_date`
	var checkoutDate time.Time
	err := tx.QueryRowContext(ctx, query, co.BookID, co.UserID, co.DueDate, co.Notes).
		Scan(&co.ID, &checkoutDate)
	if err != nil {
		return err
	}
	co.CheckoutDate = checkoutDate.Format(time.RFC3339)
	return nil
}

func (r *checkoutRepository) LockOpenByBook(ctx context.Context, tx *sql.Tx, bookID int32) (*domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + `
	          FROM checkouts
	          WHERE book_id = $1 AND return_date IS NULL
	          ORDER BY checkout_date DESC
	          LIMIT 1
	          FOR UPDATE`
	return scanCheckout(tx.QueryRowContext(ctx, query, bookID))
}

func (r *checkoutRepository) Close(ctx context.Context, tx *sql.Tx, id int32, condition domain.CheckoutCondition) (string, error) {
	query := `UPDATE checkouts
	          SET return_date = CURRENT_TIMESTAMP, condition = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2 RETURNING return_date`
	var returnDate time.Time
	if err := tx.QueryRowContext(ctx, query, condition, id).Scan(&returnDate); err != nil {
		return "", err
	}
	return returnDate.Format(time.RFC3339), nil
}

func (r *checkoutRepository) CurrentByBook(ctx context.Context, bookID int32) (*domain.CheckoutWithBorrower, error) {
	query := `SELECT c.id, c.book_id, c.user_id, c.checkout_date, c.due_date, c.return_date, c.condition, c.notes, c.created_at, c.updated_at, u.name AS user_name
	          FROM checkouts c
	          JOIN users u ON c.user_id = u.id
	          WHERE c.book_id = $1 AND c.return_date IS NULL
	          ORDER BY c.checkout_date DESC
	          LIMIT 1`
	co, err := scanCheckoutWithBorrower(r.db.QueryRowContext(ctx, query, bookID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return co, err
}

func (r *checkoutRepository) HistoryByBook(ctx context.Context, bookID int32) ([]domain.CheckoutWithBorrower, error) {
	query := `SELECT c.id, c.book_id, c.user_id, c.checkout_date, c.due_date, c.return_date, c.condition, c.notes, c.created_at, c.updated_at, u.name AS user_name
	          FROM checkouts c
	          JOIN users u ON c.user_id = u.id
	          WHERE c.book_id = $1 AND c.return_date IS NOT NULL
	          ORDER BY c.checkout_date DESC`
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkouts []domain.CheckoutWithBorrower
	for rows.Next() {
		co, err := scanCheckoutWithBorrower(rows)
		if err != nil {
			return nil, err
		}
		checkouts = append(checkouts, *co)
	}
	return checkouts, rows.Err()
}

func (r *checkoutRepository) ActiveByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error) {
	return r.listByUser(ctx, userID, "IS NULL")
}

func (r *checkoutRepository) HistoryByUser(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, error) {
	return r.listByUser(ctx, userID, "IS NOT NULL")
}

func (r *checkoutRepository) listByUser(ctx context.Context, userID int32, returnDateClause string) ([]domain.CheckoutWithBook, error) {
	query := `SELECT c.id, c.book_id, c.user_id, c.checkout_date, c.due_date, c.return_date, c.condition, c.notes, c.created_at, c.updated_at, b.title AS book_title, b.author AS book_author
	          FROM checkouts c
	          JOIN books b ON c.book_id = b.id
	          WHERE c.user_id = $1 AND c.return_date ` + returnDateClause + `
	          ORDER BY c.checkout_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkouts []domain.CheckoutWithBook
	for rows.Next() {
		var co domain.CheckoutWithBook
		if err := scanCheckoutFields(rows, &co.Checkout, &co.BookTitle, &co.BookAuthor); err != nil {
			return nil, err
		}
		checkouts = append(checkouts, co)
	}
	return checkouts, rows.Err()
}

func scanCheckout(row rowScanner) (*domain.Checkout, error) {
	co := &domain.Checkout{}
	if err := scanCheckoutFields(row, co); err != nil {
		return nil, err
	}
	return co, nil
}

func scanCheckoutWithBorrower(row rowScanner) (*domain.CheckoutWithBorrower, error) {
	co := &domain.CheckoutWithBorrower{}
	if err := scanCheckoutFields(row, &co.Checkout, &co.UserName); err != nil {
		return nil, err
	}
	return co, nil
}

// scanCheckoutFields scans the checkoutColumns set into co, followed by any
// extra joined columns.
func scanCheckoutFields(row rowScanner, co *domain.Checkout, extra ...any) error {
	var checkoutDate, dueDate, createdAt, updatedAt time.Time
	var returnDate sql.NullTime
	var condition, notes sql.NullString
	dest := []any{&co.ID, &co.BookID, &co.UserID, &checkoutDate, &dueDate, &returnDate, &condition, &notes, &createdAt, &updatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	co.CheckoutDate = checkoutDate.Format(time.RFC3339)
	co.DueDate = dueDate.Format("2006-01-02")
	if returnDate.Valid {
		d := returnDate.Time.Format(time.RFC3339)
		co.ReturnDate = &d
	}
	if condition.Valid {
		c := domain.CheckoutCondition(condition.String)
		co.Condition = &c
	}
	if notes.Valid {
		co.Notes = &notes.String
	}
	co.CreatedAt = createdAt.Format(time.RFC3339)
	co.UpdatedAt = updatedAt.Format(time.RFC3339)
	return nil
}
