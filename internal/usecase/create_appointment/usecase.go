package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	"github.com/Jelenicat/abeauty/internal/schedule"
	"github.com/Jelenicat/abeauty/pkg/ptr"
)

// UseCase use case для создания записи (бронирование клиента или блокировка админа)
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	employeeRepo    EmployeeRepository
	catalogRepo     CatalogRepository
	settingsRepo    SettingsRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
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
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		employeeRepo:    employeeRepo,
		catalogRepo:     catalogRepo,
		settingsRepo:    settingsRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Все проверки занятости выполняются в сериализуемой транзакции с блокировкой
// строк дня (FOR UPDATE): два конкурентных бронирования одного интервала
// не могут пройти проверку пересечений одновременно - второе получит ErrSlotTaken
// либо будет перезапущено менеджером транзакций.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: type=%s, employee=%s, date=%s, time=%s",
		req.Type, req.EmployeeID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)

	// 3. Получаем сотрудника (снапшот имени)
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("CreateAppointment: employee id=%s not found: %v", req.EmployeeID, err)
		return nil, ErrEmployeeNotFound
	}

	// 4. Для бронирования получаем услугу и проверяем квалификацию сотрудника
	appt := &domain.Appointment{
		ID:           uuid.NewString(),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		DateKey:      dateKey,
		StartHHMM:    req.StartTime,
		StartMin:     req.StartTime.Minutes(),
	}

	if req.Type == string(domain.TypeBooking) {
		service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
		if err != nil {
			uc.logger.Warn("CreateAppointment: service id=%s not found: %v", req.ServiceID, err)
			return nil, ErrServiceNotFound
		}

		if !employee.IsEligibleFor(service.ID, service.CategoryID) {
			uc.logger.Warn("CreateAppointment: employee id=%s does not provide service id=%s",
				employee.ID, service.ID)
			return nil, ErrEmployeeNotEligible
		}

		endTime, err := req.StartTime.AddMinutes(service.DurationMin)
		if err != nil {
			uc.logger.Warn("CreateAppointment: interval crosses midnight: %v", err)
			return nil, fmt.Errorf("%w: interval must end within the same day", ErrInvalidInput)
		}

		// Цена фиксируется на момент записи - последующая смена прайса
		// не затрагивает существующие брони
		appt.Type = domain.TypeBooking
		appt.Status = domain.StatusBooked
		appt.EndHHMM = endTime
		appt.EndMin = endTime.Minutes()
		appt.ServiceID = ptr.Ptr(service.ID)
		appt.ServiceName = ptr.Ptr(service.Name)
		appt.DurationMin = ptr.Ptr(service.DurationMin)
		appt.Price = ptr.Ptr(int(service.FinalPrice()))
		appt.ClientName = ptr.Ptr(req.ClientName)
		appt.ClientPhone = ptr.Ptr(domain.NormalizePhone(req.ClientPhone))
	} else {
		appt.Type = domain.TypeBlock
		appt.Status = domain.StatusBlocked
		appt.EndHHMM = req.EndTime
		appt.EndMin = req.EndTime.Minutes()
		appt.ServiceName = req.Reason
	}

	// 5. Часы работы салона на день недели
	hours, err := uc.settingsRepo.GetHoursForWeekday(ctx, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get salon hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get salon hours: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 6. Guard занятости в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Интервал внутри часов работы салона
		if appt.StartMin < hours.OpenMin() || appt.EndMin > hours.CloseMin() {
			uc.logger.Warn("CreateAppointment: interval %s-%s outside salon hours %s-%s",
				appt.StartHHMM, appt.EndHHMM, hours.Open, hours.Close)
			return ErrOutOfSalonHours
		}

		// 6.2. Бронирование должно помещаться в смену сотрудника.
		// Блокировки админ ставит независимо от смены.
		if appt.Type == domain.TypeBooking {
			dayShift, err := uc.shiftRepo.GetByEmployeeAndDate(txCtx, appt.EmployeeID, dateKey)
			if err != nil {
				if errors.Is(err, shift.ErrShiftNotFound) {
					uc.logger.Warn("CreateAppointment: employee id=%s has no shift on %s",
						appt.EmployeeID, dateKey)
					return ErrOutsideShift
				}
				uc.logger.Error("CreateAppointment: failed to get shift: %v", err)
				return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
			}

			segments := schedule.NormalizeSegments(dayShift.Segments, hours.OpenMin(), hours.CloseMin())
			if !schedule.ContainedInAny(segments, appt.StartMin, appt.EndMin) {
				uc.logger.Warn("CreateAppointment: interval %s-%s outside shift of employee id=%s",
					appt.StartHHMM, appt.EndHHMM, appt.EmployeeID)
				return ErrOutsideShift
			}
		}

		// 6.3. Пересечения с существующими записями (строки дня под FOR UPDATE)
		busy, err := uc.appointmentRepo.GetBusyIntervals(txCtx, appt.EmployeeID, dateKey, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get busy intervals: %v", err)
			return fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
		}

		for _, b := range busy {
			if schedule.Overlaps(appt.StartMin, appt.EndMin, b.StartMin, b.EndMin) {
				uc.logger.Warn("CreateAppointment: interval %s-%s overlaps appointment id=%s",
					appt.StartHHMM, appt.EndHHMM, b.ID)
				return ErrSlotTaken
			}
		}

		// 6.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 6.5. Обновляем клиентскую картотеку
		if created.IsBooking() {
			if err := uc.clientRepo.RecordVisit(txCtx, *created.ClientPhone, *created.ClientName); err != nil {
				uc.logger.Error("CreateAppointment: failed to record client visit: %v", err)
				return fmt.Errorf("%w: failed to record client visit: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return toResponse(result), nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:           appt.ID,
		Type:         string(appt.Type),
		EmployeeID:   appt.EmployeeID,
		EmployeeName: appt.EmployeeName,
		DateKey:      appt.DateKey,
		StartTime:    appt.StartHHMM,
		EndTime:      appt.EndHHMM,
		Status:       string(appt.Status),
		ServiceID:    appt.ServiceID,
		ServiceName:  appt.ServiceName,
		DurationMin:  appt.DurationMin,
		Price:        appt.Price,
		ClientName:   appt.ClientName,
		ClientPhone:  appt.ClientPhone,
		CreatedAt:    appt.CreatedAt,
		UpdatedAt:    appt.UpdatedAt,
	}
}
