package postgres

import (
	"context"
	"database/sql"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, title, author, isbn, genre, published_date, description, status, created_at, updated_at`

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, isbn, genre, published_date, description, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	var createdAt, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, b.Title, b.Author, b.ISBN, b.Genre, b.PublishedDate, b.Description, b.Status).
		Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return err
	}
	b.CreatedAt = createdAt.Format(time.RFC3339)
	b.UpdatedAt = updatedAt.Format(time.RFC3339)
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return scanBook(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

func (r *bookRepository) GetForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`
	return scanBook(tx.QueryRowContext(ctx, query, id))
}

func (r *bookRepository) SetStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.BookStatus) error {
	query := `UPDATE books SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	_, err := tx.ExecContext(ctx, query, status, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	b := &domain.Book{}
	var published sql.NullTime
	var description sql.NullString
	var createdAt, updatedAt time.Time
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Genre, &published, &description, &b.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if published.Valid {
		d := published.Time.Format("2006-01-02")
		b.PublishedDate = &d
	}
	if description.Valid {
		b.Description = &description.String
	}
	b.CreatedAt = createdAt.Format(time.RFC3339)
	b.UpdatedAt = updatedAt.Format(time.RFC3339)
	return b, nil
}
