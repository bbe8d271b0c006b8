package apply_shift_template

import (
	"context"
	"fmt"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/schedule"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// UseCase use case для применения шаблона смен к календарному месяцу
type UseCase struct {
	shiftRepo    ShiftRepository
	employeeRepo EmployeeRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	employeeRepo EmployeeRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case применения шаблона.
//
// На каждый подходящий день месяца окно шаблона подрезается к часам работы
// салона в этот день недели. Если после подрезки окно пусто (например,
// шаблон до 22:00, а воскресенье до 17:00 и начало позже), день пропускается.
// Повторное применение того же шаблона идемпотентно - смены перезаписываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyShiftTemplate: employee=%s, month=%04d-%02d, window=%s-%s",
		req.EmployeeID, req.Year, req.Month, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyShiftTemplate: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование сотрудника
	if _, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		uc.logger.Warn("ApplyShiftTemplate: employee id=%s not found: %v", req.EmployeeID, err)
		return nil, ErrEmployeeNotFound
	}

	weekdaySet := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		weekdaySet[wd] = true
	}

	startMin := req.StartTime.Minutes()
	endMin := req.EndTime.Minutes()

	resp := &Response{EmployeeID: req.EmployeeID, DateKeys: make([]string, 0)}

	// 3. Весь месяц пишется в одной транзакции: шаблон либо применен
	// целиком, либо не применен вовсе
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
		for day := first; day.Month() == req.Month; day = day.AddDate(0, 0, 1) {
			if !weekdaySet[day.Weekday()] {
				continue
			}

			hours, err := uc.settingsRepo.GetHoursForWeekday(txCtx, day.Weekday())
			if err != nil {
				uc.logger.Error("ApplyShiftTemplate: failed to get salon hours: %v", err)
				return fmt.Errorf("%w: failed to get salon hours: %v", ErrInternal, err)
			}

			// Подрезка окна шаблона к часам салона
			dayStart := schedule.Clamp(startMin, hours.OpenMin(), hours.CloseMin())
			dayEnd := schedule.Clamp(endMin, hours.OpenMin(), hours.CloseMin())
			if dayStart >= dayEnd {
				resp.DaysSkipped++
				continue
			}

			dateKey := day.Format(domain.DateFormat)
			shift := &domain.Shift{
				EmployeeID: req.EmployeeID,
				DateKey:    dateKey,
				Segments: []domain.Segment{{
					Start: types.TimeString(schedule.MinutesToTime(dayStart)),
					End:   types.TimeString(schedule.MinutesToTime(dayEnd)),
				}},
			}

			if err := uc.shiftRepo.Upsert(txCtx, shift); err != nil {
				uc.logger.Error("ApplyShiftTemplate: failed to upsert shift for %s: %v", dateKey, err)
				return fmt.Errorf("%w: failed to upsert shift: %v", ErrInternal, err)
			}

			resp.DaysApplied++
			resp.DateKeys = append(resp.DateKeys, dateKey)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApplyShiftTemplate: employee=%s, applied=%d, skipped=%d",
		req.EmployeeID, resp.DaysApplied, resp.DaysSkipped)

	return resp, nil
}
