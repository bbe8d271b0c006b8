package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	apptRepo "github.com/Jelenicat/abeauty/internal/infra/storage/appointment"
	"github.com/Jelenicat/abeauty/internal/infra/storage/shift"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/schedule"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// UseCase use case для переноса записи на другую дату и время
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи.
//
// Проверки занятости те же, что при создании, но сама переносимая запись
// исключается из списка занятых интервалов - перенос на пересекающееся
// с собой время допустим.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%s, date=%s, time=%s",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)
	startMin := req.StartTime.Minutes()

	// 2. Часы работы салона на новый день
	hours, err := uc.settingsRepo.GetHoursForWeekday(ctx, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get salon hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get salon hours: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Guard занятости в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Текущее состояние записи
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment: %v", err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.IsActive() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%s has status %s", appt.ID, appt.Status)
			return ErrAppointmentInactive
		}

		// Длительность записи сохраняется
		duration := appt.EndMin - appt.StartMin
		endMin := startMin + duration
		if endMin > domain.MinutesPerDay {
			return fmt.Errorf("%w: interval must end within the same day", ErrInvalidInput)
		}

		// 3.2. Интервал внутри часов работы салона
		if startMin < hours.OpenMin() || endMin > hours.CloseMin() {
			uc.logger.Warn("RescheduleAppointment: interval %d-%d outside salon hours %s-%s",
				startMin, endMin, hours.Open, hours.Close)
			return ErrOutOfSalonHours
		}

		// 3.3. Бронирование должно помещаться в смену сотрудника
		if appt.Type == domain.TypeBooking {
			dayShift, err := uc.shiftRepo.GetByEmployeeAndDate(txCtx, appt.EmployeeID, dateKey)
			if err != nil {
				if errors.Is(err, shift.ErrShiftNotFound) {
					uc.logger.Warn("RescheduleAppointment: employee id=%s has no shift on %s",
						appt.EmployeeID, dateKey)
					return ErrOutsideShift
				}
				uc.logger.Error("RescheduleAppointment: failed to get shift: %v", err)
				return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
			}

			segments := schedule.NormalizeSegments(dayShift.Segments, hours.OpenMin(), hours.CloseMin())
			if !schedule.ContainedInAny(segments, startMin, endMin) {
				uc.logger.Warn("RescheduleAppointment: interval %d-%d outside shift of employee id=%s",
					startMin, endMin, appt.EmployeeID)
				return ErrOutsideShift
			}
		}

		// 3.4. Пересечения, исключая саму переносимую запись
		busy, err := uc.appointmentRepo.GetBusyIntervals(txCtx, appt.EmployeeID, dateKey, &appt.ID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get busy intervals: %v", err)
			return fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
		}

		for _, b := range busy {
			if schedule.Overlaps(startMin, endMin, b.StartMin, b.EndMin) {
				uc.logger.Warn("RescheduleAppointment: interval %d-%d overlaps appointment id=%s",
					startMin, endMin, b.ID)
				return ErrSlotTaken
			}
		}

		// 3.5. Обновляем интервал
		if err := uc.appointmentRepo.UpdateInterval(txCtx, appt.ID, dateKey, startMin, endMin); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update interval: %v", err)
			return fmt.Errorf("%w: failed to update interval: %v", ErrInternal, err)
		}

		appt.DateKey = dateKey
		appt.StartMin = startMin
		appt.EndMin = endMin
		appt.StartHHMM = types.TimeString(schedule.MinutesToTime(startMin))
		appt.EndHHMM = types.TimeString(schedule.MinutesToTime(endMin))

		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully moved appointment id=%s to %s %s",
		result.ID, result.DateKey, result.StartHHMM)

	return &Response{
		ID:           result.ID,
		Type:         string(result.Type),
		EmployeeID:   result.EmployeeID,
		EmployeeName: result.EmployeeName,
		DateKey:      result.DateKey,
		StartTime:    result.StartHHMM,
		EndTime:      result.EndHHMM,
		Status:       string(result.Status),
	}, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
