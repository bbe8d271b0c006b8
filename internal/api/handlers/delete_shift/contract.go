package delete_shift

import "context"

type AppointmentsService interface {
	DeleteShift(ctx context.Context, employeeID, dateKey string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
