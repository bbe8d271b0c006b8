package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	apptRepo "github.com/Jelenicat/abeauty/internal/infra/storage/appointment"
	shiftRepo "github.com/Jelenicat/abeauty/internal/infra/storage/shift"
)

type fakeAppointmentRepo struct {
	appointments map[string]*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetBusyIntervals(_ context.Context, employeeID, dateKey string, excludeID *string) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.EmployeeID == employeeID && a.DateKey == dateKey && a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateInterval(_ context.Context, id, dateKey string, startMin, endMin int) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.DateKey = dateKey
	appt.StartMin = startMin
	appt.EndMin = endMin
	return nil
}

type fakeShiftRepo struct {
	shifts map[string]*domain.Shift
}

func (f *fakeShiftRepo) GetByEmployeeAndDate(_ context.Context, employeeID, dateKey string) (*domain.Shift, error) {
	sh, ok := f.shifts[domain.ShiftID(employeeID, dateKey)]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return sh, nil
}

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) GetHoursForWeekday(_ context.Context, weekday time.Weekday) (domain.DayHours, error) {
	return domain.DefaultSalonHours[weekday], nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, key)
	require.NoError(t, err)
	return d
}

func booking(id, dateKey string, startMin, endMin int) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		Type:       domain.TypeBooking,
		EmployeeID: "emp1", EmployeeName: "Jelena",
		DateKey:  dateKey,
		StartMin: startMin, EndMin: endMin,
		Status: domain.StatusBooked,
	}
}

func newTestUseCase(appts *fakeAppointmentRepo, shifts *fakeShiftRepo) *UseCase {
	uc := NewUseCase(appts, shifts, &fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func fullDayShift(dateKeys ...string) *fakeShiftRepo {
	shifts := make(map[string]*domain.Shift, len(dateKeys))
	for _, key := range dateKeys {
		shifts[domain.ShiftID("emp1", key)] = &domain.Shift{
			EmployeeID: "emp1",
			DateKey:    key,
			Segments:   []domain.Segment{{Start: "09:00", End: "17:00"}},
		}
	}
	return &fakeShiftRepo{shifts: shifts}
}

func TestReschedule(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1": booking("a1", "2026-09-14", 600, 660),
	}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-15"))

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-15"),
		StartTime:     "14:00",
	})
	require.NoError(t, err)

	// Длительность сохраняется: час остался часом
	assert.Equal(t, "2026-09-15", resp.DateKey)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:00", resp.EndTime.String())

	moved := appts.appointments["a1"]
	assert.Equal(t, 840, moved.StartMin)
	assert.Equal(t, 900, moved.EndMin)
}

func TestRescheduleOverlapWithSelfAllowed(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1": booking("a1", "2026-09-14", 600, 660),
	}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-14"))

	// Сдвиг на полчаса пересекается со старым положением самой записи
	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-14"),
		StartTime:     "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", resp.StartTime.String())
}

func TestRescheduleSlotTaken(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1":    booking("a1", "2026-09-14", 600, 660),
		"other": booking("other", "2026-09-14", 840, 900),
	}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-14"))

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-14"),
		StartTime:     "14:30",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 600, appts.appointments["a1"].StartMin, "appointment must stay in place")
}

func TestRescheduleOutsideShift(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1": booking("a1", "2026-09-14", 600, 660),
	}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-14"))

	// Смена до 17:00
	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-14"),
		StartTime:     "16:30",
	})
	assert.ErrorIs(t, err, ErrOutsideShift)
}

func TestRescheduleNoShiftOnNewDate(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1": booking("a1", "2026-09-14", 600, 660),
	}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-15"),
		StartTime:     "10:00",
	})
	assert.ErrorIs(t, err, ErrOutsideShift)
}

func TestRescheduleBlockSkipsShiftCheck(t *testing.T) {
	block := booking("b1", "2026-09-14", 600, 660)
	block.Type = domain.TypeBlock
	block.Status = domain.StatusBlocked
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{"b1": block}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "b1",
		Date:          date(t, "2026-09-15"),
		StartTime:     "12:00",
	})
	assert.NoError(t, err)
}

func TestRescheduleInactive(t *testing.T) {
	cancelled := booking("a1", "2026-09-14", 600, 660)
	cancelled.Status = domain.StatusCancelled
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{"a1": cancelled}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-14"))

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-09-14"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, ErrAppointmentInactive)
}

func TestRescheduleNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appointments: map[string]*domain.Appointment{}}, fullDayShift("2026-09-14"))

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "ghost",
		Date:          date(t, "2026-09-14"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRescheduleDateInPast(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{
		"a1": booking("a1", "2026-09-14", 600, 660),
	}}
	uc := newTestUseCase(appts, fullDayShift("2026-09-14"))

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "a1",
		Date:          date(t, "2026-08-31"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
