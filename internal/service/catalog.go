package service

import (
	"context"
	"database/sql"
	"errors"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

type catalogService struct {
	bookRepo repository.BookRepository
}

func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}

func (s *catalogService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, storeErr(err)
	}
	return book, nil
}

func (s *catalogService) AddBook(ctx context.Context, book *domain.Book) error {
	// New books always enter the catalog available.
	book.Status = domain.BookStatusAvailable
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return storeErr(err)
	}
	return nil
}
