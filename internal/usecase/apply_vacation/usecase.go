package apply_vacation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// UseCase use case для оформления отпуска сотрудника
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	employeeRepo    EmployeeRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		employeeRepo:    employeeRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case оформления отпуска.
//
// На каждый сегмент каждой смены в периоде пишется запись типа vacation,
// закрывающая сегмент целиком. ID записи детерминированный
// (vac_{employeeId}_{dateKey}_{HHMM}), повторное оформление того же
// отпуска перезаписывает существующие записи, а не плодит дубликаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyVacation: employee=%s, range=%s..%s",
		req.EmployeeID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyVacation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сотрудника (снапшот имени для записей)
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("ApplyVacation: employee id=%s not found: %v", req.EmployeeID, err)
		return nil, ErrEmployeeNotFound
	}

	startKey := req.StartDate.Format(domain.DateFormat)
	endKey := req.EndDate.Format(domain.DateFormat)

	resp := &Response{EmployeeID: employee.ID, DateKeys: make([]string, 0)}

	// 3. Записи отпуска пишутся в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		shifts, err := uc.shiftRepo.GetByEmployeeAndRange(txCtx, employee.ID, startKey, endKey)
		if err != nil {
			uc.logger.Error("ApplyVacation: failed to get shifts: %v", err)
			return fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
		}

		for _, shift := range shifts {
			written := 0
			for _, seg := range shift.Segments {
				entry := vacationEntry(employee, shift.DateKey, seg)
				if _, err := uc.appointmentRepo.Upsert(txCtx, entry); err != nil {
					uc.logger.Error("ApplyVacation: failed to upsert vacation entry id=%s: %v", entry.ID, err)
					return fmt.Errorf("%w: failed to upsert vacation entry: %v", ErrInternal, err)
				}
				written++
			}
			if written > 0 {
				resp.DaysCovered++
				resp.EntriesWritten += written
				resp.DateKeys = append(resp.DateKeys, shift.DateKey)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApplyVacation: employee=%s, days=%d, entries=%d",
		employee.ID, resp.DaysCovered, resp.EntriesWritten)

	return resp, nil
}

// vacationEntry строит запись отпуска, закрывающую один сегмент смены
func vacationEntry(employee *domain.Employee, dateKey string, seg domain.Segment) *domain.Appointment {
	// "10:30" -> "1030" для детерминированного ID
	hhmm := strings.ReplaceAll(seg.Start.String(), ":", "")

	return &domain.Appointment{
		ID:           fmt.Sprintf("vac_%s_%s_%s", employee.ID, dateKey, hhmm),
		Type:         domain.TypeVacation,
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		DateKey:      dateKey,
		StartHHMM:    seg.Start,
		EndHHMM:      seg.End,
		StartMin:     seg.Start.Minutes(),
		EndMin:       seg.End.Minutes(),
		Status:       domain.StatusVacation,
	}
}
