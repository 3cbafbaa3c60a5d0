package postgres

import (
	"context"
	"database/sql"
	"time"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, phone, address, status, member_since, updated_at`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, phone, address, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, member_since, updated_at`
	var memberSince, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Phone, u.Address, u.Status).
		Scan(&u.ID, &memberSince, &updatedAt)
	if err != nil {
		return err
	}
	u.MemberSince = memberSince.Format(time.RFC3339)
	u.UpdatedAt = updatedAt.Format(time.RFC3339)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) ListWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error) {
	query := `SELECT u.id, u.name, u.email, u.phone, u.address, u.status, u.member_since, u.updated_at, COUNT(c.id) AS books_borrowed
	          FROM users u
	          LEFT JOIN checkouts c ON u.id = c.user_id AND c.return_date IS NULL
	          GROUP BY u.id
	          ORDER BY u.name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserWithOpenCount
	for rows.Next() {
		var u domain.UserWithOpenCount
		var phone, address sql.NullString
		var memberSince, updatedAt time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &phone, &address, &u.Status, &memberSince, &updatedAt, &u.BooksBorrowed); err != nil {
			return nil, err
		}
		if phone.Valid {
			u.Phone = &phone.String
		}
		if address.Valid {
			u.Address = &address.String
		}
		u.MemberSince = memberSince.Format(time.RFC3339)
		u.UpdatedAt = updatedAt.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	query := `UPDATE users SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var phone, address sql.NullString
	var memberSince, updatedAt time.Time
	err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &address, &u.Status, &memberSince, &updatedAt)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if address.Valid {
		u.Address = &address.String
	}
	u.MemberSince = memberSince.Format(time.RFC3339)
	u.UpdatedAt = updatedAt.Format(time.RFC3339)
	return u, nil
}
