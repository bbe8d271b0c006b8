package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	shiftRepo "github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	"github.com/Jelenicat/abeauty/pkg/ptr"
	"github.com/Jelenicat/abeauty/pkg/types"
)

type fakeAppointmentRepo struct {
	busy map[string][]*domain.Appointment // key employeeID
}

func (f *fakeAppointmentRepo) GetBusyIntervals(_ context.Context, employeeID, _ string, _ *string) ([]*domain.Appointment, error) {
	return f.busy[employeeID], nil
}

type fakeShiftRepo struct {
	shifts map[string]*domain.Shift // key employeeID_dateKey
}

func (f *fakeShiftRepo) GetByEmployeeAndDate(_ context.Context, employeeID, dateKey string) (*domain.Shift, error) {
	sh, ok := f.shifts[domain.ShiftID(employeeID, dateKey)]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return sh, nil
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

func (f *fakeEmployeeRepo) ListEligible(_ context.Context, categoryID, serviceID string) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0)
	for _, emp := range f.employees {
		if emp.IsEligibleFor(serviceID, categoryID) {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	services map[string]*domain.Service
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, assert.AnError
	}
	return svc, nil
}

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) GetHoursForWeekday(_ context.Context, weekday time.Weekday) (domain.DayHours, error) {
	return domain.DefaultSalonHours[weekday], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// 2026-09-14 - понедельник
const testDateKey = "2026-09-14"

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, testDateKey)
	require.NoError(t, err)
	return d
}

func newTestUseCase(appts *fakeAppointmentRepo, shifts *fakeShiftRepo, employees *fakeEmployeeRepo) *UseCase {
	catalog := &fakeCatalogRepo{services: map[string]*domain.Service{
		"svc1": {ID: "svc1", Name: "Šišanje", CategoryID: "cat-hair", DurationMin: 60, BasePrice: 1000},
	}}
	uc := NewUseCase(appts, shifts, employees, catalog, &fakeSettingsRepo{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func singleEmployee() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena", Categories: []string{"cat-hair"}},
	}}
}

func shiftFor(employeeID, dateKey string, segments ...domain.Segment) *fakeShiftRepo {
	return &fakeShiftRepo{shifts: map[string]*domain.Shift{
		domain.ShiftID(employeeID, dateKey): {EmployeeID: employeeID, DateKey: dateKey, Segments: segments},
	}}
}

func startTimes(slots []Slot) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime
	}
	return out
}

func TestGetAvailableSlots(t *testing.T) {
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{
		"emp1": {{StartMin: 600, EndMin: 660}}, // занято 10:00-11:00
	}}
	shifts := shiftFor("emp1", testDateKey, domain.Segment{Start: "09:00", End: "13:00"})
	uc := newTestUseCase(appts, shifts, singleEmployee())

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:  "svc1",
		Date:       testDate(t),
		EmployeeID: ptr.Ptr("emp1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "svc1", resp.ServiceID)
	assert.Equal(t, testDateKey, resp.DateKey)
	assert.Equal(t, 60, resp.DurationMin)

	// До занятого влезает только 09:00, после - сетка с 11:00
	assert.Equal(t,
		[]types.TimeString{"09:00", "11:00", "11:15", "11:30", "11:45", "12:00"},
		startTimes(resp.Slots))
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].EndTime)
	assert.Equal(t, "Jelena", resp.Slots[0].EmployeeName)
}

func TestGetAvailableSlotsNoShift(t *testing.T) {
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, singleEmployee())

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:  "svc1",
		Date:       testDate(t),
		EmployeeID: ptr.Ptr("emp1"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlotsAnyEmployee(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena", Categories: []string{"cat-hair"}},
		"emp2": {ID: "emp2", Name: "Ana", Services: []string{"svc1"}},
		"emp3": {ID: "emp3", Name: "Mira", Categories: []string{"cat-nails"}},
	}}
	shifts := &fakeShiftRepo{shifts: map[string]*domain.Shift{
		domain.ShiftID("emp1", testDateKey): {EmployeeID: "emp1", DateKey: testDateKey,
			Segments: []domain.Segment{{Start: "09:00", End: "11:00"}}},
		domain.ShiftID("emp2", testDateKey): {EmployeeID: "emp2", DateKey: testDateKey,
			Segments: []domain.Segment{{Start: "09:00", End: "11:00"}}},
		// Смена emp3 не учитывается - услуга вне квалификации
		domain.ShiftID("emp3", testDateKey): {EmployeeID: "emp3", DateKey: testDateKey,
			Segments: []domain.Segment{{Start: "09:00", End: "20:00"}}},
	}}
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{}}
	uc := newTestUseCase(appts, shifts, employees)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "svc1", Date: testDate(t)})
	require.NoError(t, err)

	// По 5 слотов на каждого подходящего мастера; при равном времени
	// начала порядок по имени
	require.Len(t, resp.Slots, 10)
	assert.Equal(t, "Ana", resp.Slots[0].EmployeeName)
	assert.Equal(t, "Jelena", resp.Slots[1].EmployeeName)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[1].StartTime)

	for _, s := range resp.Slots {
		assert.NotEqual(t, "emp3", s.EmployeeID)
	}
}

func TestGetAvailableSlotsTodayFiltersPast(t *testing.T) {
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{}}
	shifts := shiftFor("emp1", "2026-09-01", domain.Segment{Start: "09:00", End: "13:00"})
	uc := newTestUseCase(appts, shifts, singleEmployee())
	// Сейчас 10:30 - слоты раньше не предлагаются
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)}

	today, err := time.Parse(domain.DateFormat, "2026-09-01")
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:  "svc1",
		Date:       today,
		EmployeeID: ptr.Ptr("emp1"),
	})
	require.NoError(t, err)

	got := startTimes(resp.Slots)
	assert.NotContains(t, got, types.TimeString("10:15"))
	assert.Contains(t, got, types.TimeString("10:30"))
	assert.Contains(t, got, types.TimeString("12:00"))
}

func TestGetAvailableSlotsEmployeeNotEligible(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena", Categories: []string{"cat-nails"}},
	}}
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, employees)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID:  "svc1",
		Date:       testDate(t),
		EmployeeID: ptr.Ptr("emp1"),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotEligible)
}

func TestGetAvailableSlotsServiceNotFound(t *testing.T) {
	appts := &fakeAppointmentRepo{busy: map[string][]*domain.Appointment{}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, singleEmployee())

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "ghost", Date: testDate(t)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
