package appointments

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByDate(ctx context.Context, dateKey string) ([]*domain.Shift, error)
	Delete(ctx context.Context, employeeID, dateKey string) error
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
}

// ClientRepository интерфейс репозитория клиентской картотеки
type ClientRepository interface {
	IncrementNoShow(ctx context.Context, phone, name string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
