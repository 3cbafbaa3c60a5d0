package postgres

import (
	"database/sql"

	"libtrack-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.UserRepository
	repository.CheckoutRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		BookRepository:     NewBookRepository(db),
		UserRepository:     NewUserRepository(db),
		CheckoutRepository: NewCheckoutRepository(db),
		StatsRepository:    NewStatsRepository(db),
	}
}
