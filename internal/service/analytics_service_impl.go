package service

import (
	"context"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/repository"
)

type analyticsService struct {
	cows      repository.CowRepo
	reminders repository.ReminderRepo
}

func NewAnalyticsService(cows repository.CowRepo, reminders repository.ReminderRepo) AnalyticsService {
	return &analyticsService{cows: cows, reminders: reminders}
}

func (s *analyticsService) Snapshot(ctx context.Context) (*app.HerdStats, error) {
	byStatus, err := s.cows.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	reminders, err := s.reminders.List(ctx)
	if err != nil {
		return nil, err
	}
	return aggregateHerdStats(byStatus, reminders), nil
}
