package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/service/settings/models"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// Service сервис настроек салона: просмотр и переопределение часов работы
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetWeekHours возвращает часы работы салона на все дни недели.
// Дни без переопределения показываются с дефолтным расписанием.
func (s *Service) GetWeekHours(ctx context.Context) (*models.WeekHoursResponse, error) {
	s.logger.Info("GetWeekHours: fetching salon hours")

	resp := &models.WeekHoursResponse{
		Days: make([]*models.DayHoursResponse, 0, 7),
	}
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		hours, err := s.settingsRepo.GetHoursForWeekday(ctx, weekday)
		if err != nil {
			s.logger.Error("GetWeekHours: failed to get hours for %s: %v", weekday, err)
			return nil, fmt.Errorf("%w: GetWeekHours - repository error: %v", ErrInternal, err)
		}
		resp.Days = append(resp.Days, models.FromDomainDayHours(weekday, hours))
	}

	return resp, nil
}

// UpdateHours переопределяет часы работы салона на день недели
func (s *Service) UpdateHours(ctx context.Context, weekday int, openTime, closeTime string) (*models.DayHoursResponse, error) {
	s.logger.Info("UpdateHours: weekday=%d open=%s close=%s", weekday, openTime, closeTime)

	if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
		return nil, fmt.Errorf("%w: weekday must be 0 (Sunday) to 6 (Saturday), got %d", ErrInvalidInput, weekday)
	}

	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open time %q", ErrInvalidInput, openTime)
	}
	close, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time %q", ErrInvalidInput, closeTime)
	}
	if !open.IsBefore(close) {
		return nil, fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidInput, open, close)
	}

	hours := domain.DayHours{Open: open, Close: close}
	if err := s.settingsRepo.UpsertHours(ctx, time.Weekday(weekday), hours); err != nil {
		s.logger.Error("UpdateHours: failed to upsert hours for weekday=%d: %v", weekday, err)
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHours: weekday=%d now %s-%s", weekday, open, close)
	return models.FromDomainDayHours(time.Weekday(weekday), hours), nil
}
