package get_salon_hours

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/settings/models"
)

type SettingsService interface {
	GetWeekHours(ctx context.Context) (*models.WeekHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
