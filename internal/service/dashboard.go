package service

import (
	"context"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/repository"
)

const feedLimit = 5

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	totalBooks, err := s.statsRepo.CountBooks(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	checkedOut, err := s.statsRepo.CountBooksByStatus(ctx, domain.BookStatusCheckedOut)
	if err != nil {
		return nil, storeErr(err)
	}
	activeUsers, err := s.statsRepo.CountActiveBorrowers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	overdue, err := s.statsRepo.CountOverdue(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return &domain.DashboardStats{
		TotalBooks:      totalBooks,
		CheckedOutBooks: checkedOut,
		ActiveUsers:     activeUsers,
		OverdueBooks:    overdue,
	}, nil
}

func (s *dashboardService) RecentActivity(ctx context.Context) ([]domain.ActivityEntry, error) {
	entries, err := s.statsRepo.RecentActivity(ctx, feedLimit)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *dashboardService) PopularBooks(ctx context.Context) ([]domain.PopularBook, error) {
	books, err := s.statsRepo.PopularBooks(ctx, feedLimit)
	if err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}
