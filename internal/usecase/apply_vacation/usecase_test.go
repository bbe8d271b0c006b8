package apply_vacation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
)

type fakeAppointmentRepo struct {
	entries map[string]*domain.Appointment
}

func (f *fakeAppointmentRepo) Upsert(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.entries[appt.ID] = appt
	return appt, nil
}

type fakeShiftRepo struct {
	shifts []*domain.Shift
}

func (f *fakeShiftRepo) GetByEmployeeAndRange(_ context.Context, employeeID, startDate, endDate string) ([]*domain.Shift, error) {
	out := make([]*domain.Shift, 0)
	for _, sh := range f.shifts {
		if sh.EmployeeID == employeeID && sh.DateKey >= startDate && sh.DateKey <= endDate {
			out = append(out, sh)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, assert.AnError
	}
	return emp, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, key)
	require.NoError(t, err)
	return d
}

func newTestUseCase(appts *fakeAppointmentRepo, shifts *fakeShiftRepo) *UseCase {
	employees := &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena"},
	}}
	return NewUseCase(appts, shifts, employees, &fakeTxManager{}, nopLogger{})
}

func TestApplyVacation(t *testing.T) {
	appts := &fakeAppointmentRepo{entries: map[string]*domain.Appointment{}}
	shifts := &fakeShiftRepo{shifts: []*domain.Shift{
		{EmployeeID: "emp1", DateKey: "2026-09-07", Segments: []domain.Segment{{Start: "10:00", End: "18:00"}}},
		{EmployeeID: "emp1", DateKey: "2026-09-08", Segments: []domain.Segment{
			{Start: "09:00", End: "13:00"},
			{Start: "14:00", End: "18:00"},
		}},
		// Вне периода отпуска
		{EmployeeID: "emp1", DateKey: "2026-09-21", Segments: []domain.Segment{{Start: "10:00", End: "18:00"}}},
	}}
	uc := newTestUseCase(appts, shifts)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: "emp1",
		StartDate:  date(t, "2026-09-07"),
		EndDate:    date(t, "2026-09-13"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.DaysCovered)
	assert.Equal(t, 3, resp.EntriesWritten)
	assert.Equal(t, []string{"2026-09-07", "2026-09-08"}, resp.DateKeys)

	// Запись закрывает сегмент смены целиком, ID детерминированный
	entry := appts.entries["vac_emp1_2026-09-08_1400"]
	require.NotNil(t, entry)
	assert.Equal(t, domain.TypeVacation, entry.Type)
	assert.Equal(t, domain.StatusVacation, entry.Status)
	assert.Equal(t, 840, entry.StartMin)
	assert.Equal(t, 1080, entry.EndMin)
	assert.Equal(t, "Jelena", entry.EmployeeName)
}

func TestApplyVacationIdempotent(t *testing.T) {
	appts := &fakeAppointmentRepo{entries: map[string]*domain.Appointment{}}
	shifts := &fakeShiftRepo{shifts: []*domain.Shift{
		{EmployeeID: "emp1", DateKey: "2026-09-07", Segments: []domain.Segment{{Start: "10:00", End: "18:00"}}},
	}}
	uc := newTestUseCase(appts, shifts)

	req := &Request{EmployeeID: "emp1", StartDate: date(t, "2026-09-07"), EndDate: date(t, "2026-09-07")}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, appts.entries, 1, "re-apply overwrites the same entry")
}

func TestApplyVacationNoShifts(t *testing.T) {
	appts := &fakeAppointmentRepo{entries: map[string]*domain.Appointment{}}
	uc := newTestUseCase(appts, &fakeShiftRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: "emp1",
		StartDate:  date(t, "2026-09-07"),
		EndDate:    date(t, "2026-09-13"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.DaysCovered)
	assert.Equal(t, 0, resp.EntriesWritten)
	assert.Empty(t, appts.entries)
}

func TestApplyVacationEmployeeNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{entries: map[string]*domain.Appointment{}}, &fakeShiftRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		EmployeeID: "ghost",
		StartDate:  date(t, "2026-09-07"),
		EndDate:    date(t, "2026-09-13"),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestApplyVacationValidation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{entries: map[string]*domain.Appointment{}}, &fakeShiftRepo{})

	t.Run("end before start", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			EmployeeID: "emp1",
			StartDate:  date(t, "2026-09-13"),
			EndDate:    date(t, "2026-09-07"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("range too long", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			EmployeeID: "emp1",
			StartDate:  date(t, "2026-06-01"),
			EndDate:    date(t, "2026-09-01"),
		})
		assert.ErrorIs(t, err, ErrRangeTooLong)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{EmployeeID: "emp1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
