package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jelenicat/abeauty/internal/domain"
	apptRepo "github.com/Jelenicat/abeauty/internal/infra/storage/appointment"
	shiftRepo "github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	"github.com/Jelenicat/abeauty/internal/service/appointments/models"
)

// Service сервис для работы с записями: чтение, статусы, удаление.
// Создание и перенос живут в usecase-слое - там транзакционный guard.
type Service struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	employeeRepo    EmployeeRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	employeeRepo EmployeeRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		employeeRepo:    employeeRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetDaySchedule собирает дневной календарь: смены и записи всех сотрудников.
// Сотрудники без смены на день тоже попадают в ответ - с пустыми сегментами.
// Три чтения идут в read-only транзакции: календарь видит согласованный срез дня.
func (s *Service) GetDaySchedule(ctx context.Context, dateKey string) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: fetching schedule for %s", dateKey)

	var (
		employees    []*domain.Employee
		shifts       []*domain.Shift
		appointments []*domain.Appointment
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		employees, err = s.employeeRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: GetDaySchedule - failed to list employees: %v", ErrInternal, err)
		}

		shifts, err = s.shiftRepo.GetByDate(txCtx, dateKey)
		if err != nil {
			return fmt.Errorf("%w: GetDaySchedule - failed to get shifts: %v", ErrInternal, err)
		}

		appointments, err = s.appointmentRepo.GetByFilter(txCtx, domain.AppointmentFilter{
			DateKey:         &dateKey,
			IncludeInactive: true,
		})
		if err != nil {
			return fmt.Errorf("%w: GetDaySchedule - failed to get appointments: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("GetDaySchedule: %v", err)
		return nil, err
	}

	shiftByEmployee := make(map[string]*domain.Shift, len(shifts))
	for _, sh := range shifts {
		shiftByEmployee[sh.EmployeeID] = sh
	}

	apptsByEmployee := make(map[string][]*models.AppointmentResponse)
	for _, a := range appointments {
		apptsByEmployee[a.EmployeeID] = append(apptsByEmployee[a.EmployeeID], models.FromDomainAppointment(a))
	}

	resp := &models.DayScheduleResponse{
		DateKey:   dateKey,
		Employees: make([]*models.EmployeeDayResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		day := &models.EmployeeDayResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Segments:     []models.SegmentResponse{},
			Appointments: apptsByEmployee[emp.ID],
		}
		if day.Appointments == nil {
			day.Appointments = []*models.AppointmentResponse{}
		}
		if sh, ok := shiftByEmployee[emp.ID]; ok {
			day.Segments = models.FromDomainSegments(sh.Segments)
		}
		resp.Employees = append(resp.Employees, day)
	}

	s.logger.Info("GetDaySchedule: %d employees, %d appointments on %s",
		len(resp.Employees), len(appointments), dateKey)
	return resp, nil
}

// Cancel отменяет запись. Отмененная запись перестает занимать время,
// но остается в БД для истории.
func (s *Service) Cancel(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)
	return s.transition(ctx, id, domain.StatusCancelled)
}

// ChangeStatus меняет статус записи. Переход в noshow дополнительно
// увеличивает счетчик неявок клиента - атомарно со сменой статуса.
func (s *Service) ChangeStatus(ctx context.Context, id, status string) (*models.AppointmentResponse, error) {
	s.logger.Info("ChangeStatus: appointment id=%s -> %s", id, status)

	next, ok := models.ToDomainStatus(status)
	if !ok {
		s.logger.Warn("ChangeStatus: invalid status %q for appointment id=%s", status, id)
		return nil, ErrInvalidStatus
	}

	return s.transition(ctx, id, next)
}

// Delete удаляет запись без следа в истории (ручная чистка админа)
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	err := s.appointmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// DeleteShift убирает смену сотрудника на день из графика.
// Записи на этот день не трогаются - они видны в календаре и после.
func (s *Service) DeleteShift(ctx context.Context, employeeID, dateKey string) error {
	s.logger.Info("DeleteShift: employee=%s date=%s", employeeID, dateKey)

	err := s.shiftRepo.Delete(ctx, employeeID, dateKey)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("DeleteShift: shift employee=%s date=%s not found", employeeID, dateKey)
			return ErrShiftNotFound
		}
		s.logger.Error("DeleteShift: repository error employee=%s date=%s: %v", employeeID, dateKey, err)
		return fmt.Errorf("%w: DeleteShift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteShift: removed shift employee=%s date=%s", employeeID, dateKey)
	return nil
}

func (s *Service) transition(ctx context.Context, id string, next domain.AppointmentStatus) (*models.AppointmentResponse, error) {
	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
		}

		if next == domain.StatusCancelled && !appt.CanBeCancelled() {
			return ErrNotCancellable
		}
		if !appt.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			return fmt.Errorf("%w: transition - failed to update status: %v", ErrInternal, err)
		}

		// Неявка попадает в карточку клиента
		if next == domain.StatusNoShow && appt.ClientPhone != nil {
			name := ""
			if appt.ClientName != nil {
				name = *appt.ClientName
			}
			if err := s.clientRepo.IncrementNoShow(txCtx, *appt.ClientPhone, name); err != nil {
				return fmt.Errorf("%w: transition - failed to increment no-show: %v", ErrInternal, err)
			}
		}

		appt.Status = next
		result = appt
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrNotCancellable) || errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("transition: appointment id=%s: %v", id, err)
		} else {
			s.logger.Error("transition: appointment id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("transition: appointment id=%s now %s", id, next)
	return models.FromDomainAppointment(result), nil
}
