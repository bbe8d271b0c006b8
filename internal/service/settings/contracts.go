package settings

import (
	"context"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetHoursForWeekday(ctx context.Context, weekday time.Weekday) (domain.DayHours, error)
	UpsertHours(ctx context.Context, weekday time.Weekday, hours domain.DayHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
