package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
)

type fakeSettingsRepo struct {
	overrides map[time.Weekday]domain.DayHours
}

func (f *fakeSettingsRepo) GetHoursForWeekday(_ context.Context, weekday time.Weekday) (domain.DayHours, error) {
	if hours, ok := f.overrides[weekday]; ok {
		return hours, nil
	}
	return domain.DefaultSalonHours[weekday], nil
}

func (f *fakeSettingsRepo) UpsertHours(_ context.Context, weekday time.Weekday, hours domain.DayHours) error {
	if f.overrides == nil {
		f.overrides = make(map[time.Weekday]domain.DayHours)
	}
	f.overrides[weekday] = hours
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetWeekHoursDefaults(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	resp, err := svc.GetWeekHours(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	// Неделя начинается с воскресенья, как в time.Weekday
	assert.Equal(t, 0, resp.Days[0].Weekday)
	assert.Equal(t, "Sunday", resp.Days[0].WeekdayName)
	assert.Equal(t, "09:00", resp.Days[0].Open)
	assert.Equal(t, "17:00", resp.Days[0].Close)

	monday := resp.Days[1]
	assert.Equal(t, "08:00", monday.Open)
	assert.Equal(t, "22:00", monday.Close)

	saturday := resp.Days[6]
	assert.Equal(t, "08:00", saturday.Open)
	assert.Equal(t, "20:00", saturday.Close)
}

func TestUpdateHours(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateHours(context.Background(), 1, "10:00", "18:00")
	require.NoError(t, err)

	assert.Equal(t, "Monday", resp.WeekdayName)
	assert.Equal(t, "10:00", resp.Open)
	assert.Equal(t, "18:00", resp.Close)

	// Переопределение видно при следующем чтении
	week, err := svc.GetWeekHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00", week.Days[1].Open)
	assert.Equal(t, "18:00", week.Days[1].Close)
}

func TestUpdateHoursValidation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	tests := []struct {
		name    string
		weekday int
		open    string
		close   string
	}{
		{"weekday too small", -1, "08:00", "20:00"},
		{"weekday too big", 7, "08:00", "20:00"},
		{"bad open time", 1, "8am", "20:00"},
		{"bad close time", 1, "08:00", "25:00"},
		{"open after close", 1, "20:00", "08:00"},
		{"open equals close", 1, "08:00", "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateHours(context.Background(), tt.weekday, tt.open, tt.close)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
