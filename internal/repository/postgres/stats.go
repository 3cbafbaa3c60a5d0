package postgres

import (
	"context"
	"database/sql"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountBooks(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count)
	return count, err
}

func (r *statsRepository) CountBooksByStatus(ctx context.Context, status domain.BookStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *statsRepository) CountActiveBorrowers(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT COUNT(DISTINCT user_id) FROM checkouts WHERE return_date IS NULL`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *statsRepository) CountOverdue(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM checkouts WHERE return_date IS NULL AND due_date < CURRENT_TIMESTAMP`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

// RecentActivity orders by COALESCE(return_date, checkout_date) so a fresh
// return outranks an older checkout that is still out.
func (r *statsRepository) RecentActivity(ctx context.Context, limit int32) ([]domain.ActivityEntry, error) {
	query := `SELECT c.id, c.checkout_date, c.return_date, b.title AS book_title, u.name AS user_name
	          FROM checkouts c
	          JOIN books b ON c.book_id = b.id
	          JOIN users u ON c.user_id = u.id
	          ORDER BY COALESCE(c.return_date, c.checkout_date) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		var checkoutDate time.Time
		var returnDate sql.NullTime
		if err := rows.Scan(&e.CheckoutID, &checkoutDate, &returnDate, &e.BookTitle, &e.UserName); err != nil {
			return nil, err
		}
		e.CheckoutDate = checkoutDate.Format(time.RFC3339)
		if returnDate.Valid {
			d := returnDate.Time.Format(time.RFC3339)
			e.ReturnDate = &d
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *statsRepository) PopularBooks(ctx context.Context, limit int32) ([]domain.PopularBook, error) {
	query := `SELECT b.id, b.title, b.author, COUNT(c.id) AS checkout_count
	          FROM books b
	          JOIN checkouts c ON b.id = c.book_id
	          GROUP BY b.id
	          ORDER BY checkout_count DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.PopularBook
	for rows.Next() {
		var b domain.PopularBook
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.CheckoutCount); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
