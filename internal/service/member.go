package service

import (
	"context"
	"database/sql"
	"errors"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository"
)

type memberService struct {
	userRepo     repository.UserRepository
	checkoutRepo repository.CheckoutRepository
}

func NewMemberService(userRepo repository.UserRepository, checkoutRepo repository.CheckoutRepository) MemberService {
	return &memberService{userRepo: userRepo, checkoutRepo: checkoutRepo}
}

func (s *memberService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (s *memberService) ListUsersWithOpenCheckouts(ctx context.Context) ([]domain.UserWithOpenCount, error) {
	users, err := s.userRepo.ListWithOpenCheckouts(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (s *memberService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr(err)
	}
	return user, nil
}

func (s *memberService) AddUser(ctx context.Context, user *domain.User) error {
	// New members start active.
	user.Status = domain.UserStatusActive
	if err := s.userRepo.Create(ctx, user); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *memberService) UpdateUserStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return storeErr(err)
	}
	logger.Info("user status updated", "user_id", id, "status", status)
	return nil
}

func (s *memberService) UserCheckouts(ctx context.Context, userID int32) ([]domain.CheckoutWithBook, []domain.CheckoutWithBook, error) {
	active, err := s.checkoutRepo.ActiveByUser(ctx, userID)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	history, err := s.checkoutRepo.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	return active, history, nil
}
