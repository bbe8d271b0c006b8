package update_salon_hours

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/settings/models"
)

type SettingsService interface {
	UpdateHours(ctx context.Context, weekday int, openTime, closeTime string) (*models.DayHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
