package change_appointment_status

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/appointments/models"
)

type AppointmentsService interface {
	ChangeStatus(ctx context.Context, id, status string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
