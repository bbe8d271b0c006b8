package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	"github.com/Jelenicat/abeauty/internal/schedule"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	employeeRepo    EmployeeRepository
	catalogRepo     CatalogRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	employeeRepo EmployeeRepository,
	catalogRepo CatalogRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		employeeRepo:    employeeRepo,
		catalogRepo:     catalogRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Слот доступен, если интервал [start, start+duration) целиком помещается
// в свободный отрезок смены сотрудника. Сетка слотов идет с шагом 15 минут
// от начала каждого свободного отрезка. Проверка выполняется без транзакции -
// финальную занятость гарантирует guard создания записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, employee=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)

	// 1. Услуга задает длительность слота
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found: %v", req.ServiceID, err)
		return nil, ErrServiceNotFound
	}

	// 2. Кандидаты: конкретный сотрудник или все, кто оказывает услугу
	employees, err := uc.resolveEmployees(ctx, req, service)
	if err != nil {
		return nil, err
	}

	// 3. Часы работы салона на день недели
	hours, err := uc.settingsRepo.GetHoursForWeekday(ctx, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get salon hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get salon hours: %v", ErrInternal, err)
	}

	// На сегодняшнюю дату прошедшие слоты не предлагаются
	minStart := 0
	now := uc.timeProvider.Now()
	if dateKey == now.Format(domain.DateFormat) {
		minStart = now.Hour()*60 + now.Minute()
	}

	// 4. Слоты по каждому сотруднику
	slots := make([]Slot, 0)
	for _, employee := range employees {
		employeeSlots, err := uc.slotsForEmployee(ctx, employee, dateKey, hours, service.DurationMin, minStart)
		if err != nil {
			return nil, err
		}
		slots = append(slots, employeeSlots...)
	}

	// 5. Общая сортировка по времени начала, затем по имени сотрудника
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime.IsBefore(slots[j].StartTime)
		}
		return slots[i].EmployeeName < slots[j].EmployeeName
	})

	uc.logger.Info("GetAvailableSlots: found %d slots for service=%s on %s",
		len(slots), req.ServiceID, dateKey)

	return &Response{
		ServiceID:   service.ID,
		DateKey:     dateKey,
		DurationMin: service.DurationMin,
		Slots:       slots,
	}, nil
}

// resolveEmployees возвращает список сотрудников для подбора слотов
func (uc *UseCase) resolveEmployees(ctx context.Context, req *Request, service *domain.Service) ([]*domain.Employee, error) {
	if req.EmployeeID != nil {
		employee, err := uc.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: employee id=%s not found: %v", *req.EmployeeID, err)
			return nil, ErrEmployeeNotFound
		}
		if !employee.IsEligibleFor(service.ID, service.CategoryID) {
			uc.logger.Warn("GetAvailableSlots: employee id=%s does not provide service id=%s",
				employee.ID, service.ID)
			return nil, ErrEmployeeNotEligible
		}
		return []*domain.Employee{employee}, nil
	}

	employees, err := uc.employeeRepo.ListEligible(ctx, service.CategoryID, service.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list eligible employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list eligible employees: %v", ErrInternal, err)
	}
	return employees, nil
}

// slotsForEmployee считает слоты одного сотрудника на день
func (uc *UseCase) slotsForEmployee(
	ctx context.Context,
	employee *domain.Employee,
	dateKey string,
	hours domain.DayHours,
	durationMin int,
	minStart int,
) ([]Slot, error) {
	dayShift, err := uc.shiftRepo.GetByEmployeeAndDate(ctx, employee.ID, dateKey)
	if err != nil {
		// Нет смены - сотрудник в этот день не работает
		if errors.Is(err, shift.ErrShiftNotFound) {
			return nil, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get shift for employee id=%s: %v", employee.ID, err)
		return nil, fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}

	segments := schedule.NormalizeSegments(dayShift.Segments, hours.OpenMin(), hours.CloseMin())
	if len(segments) == 0 {
		return nil, nil
	}

	appointments, err := uc.appointmentRepo.GetBusyIntervals(ctx, employee.ID, dateKey, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get busy intervals for employee id=%s: %v", employee.ID, err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
	}

	busy := make([]schedule.Interval, 0, len(appointments))
	for _, a := range appointments {
		busy = append(busy, schedule.Interval{Start: a.StartMin, End: a.EndMin})
	}

	computed := schedule.ComputeSlots(segments, busy, durationMin, domain.DefaultStepMinutes)

	slots := make([]Slot, 0, len(computed))
	for _, s := range computed {
		if s.StartMin < minStart {
			continue
		}
		slots = append(slots, Slot{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			StartTime:    types.TimeString(schedule.MinutesToTime(s.StartMin)),
			EndTime:      types.TimeString(schedule.MinutesToTime(s.EndMin)),
		})
	}
	return slots, nil
}
