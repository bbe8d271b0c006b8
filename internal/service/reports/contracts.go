package reports

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetRevenueByDay(ctx context.Context, startDate, endDate string) ([]*domain.RevenueRow, error)
}

// ClientRepository интерфейс репозитория клиентской картотеки
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
