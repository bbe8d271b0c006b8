package get_day_schedule

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetDaySchedule(ctx context.Context, dateKey string) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
