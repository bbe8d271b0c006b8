package create_appointment

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	shiftRepo "github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	"github.com/Jelenicat/abeauty/internal/schedule"
	"github.com/Jelenicat/abeauty/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = append(f.created, appt)
	// Сохранённая запись сразу видна последующим проверкам занятости
	f.existing = append(f.existing, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) GetBusyIntervals(_ context.Context, employeeID, dateKey string, _ *string) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range f.existing {
		if a.EmployeeID == employeeID && a.DateKey == dateKey && a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
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

type fakeClientRepo struct {
	visits []string // нормализованные телефоны
}

func (f *fakeClientRepo) RecordVisit(_ context.Context, phone, _ string) error {
	f.visits = append(f.visits, phone)
	return nil
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

// 2026-09-14 - понедельник, салон 08:00-22:00
const testDateKey = "2026-09-14"

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, testDateKey)
	require.NoError(t, err)
	return d
}

func newTestUseCase(appts *fakeAppointmentRepo, shifts *fakeShiftRepo, clients *fakeClientRepo) *UseCase {
	employees := &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena", Categories: []string{"cat-hair"}},
	}}
	catalog := &fakeCatalogRepo{services: map[string]*domain.Service{
		"svc1": {ID: "svc1", Name: "Šišanje", CategoryID: "cat-hair", DurationMin: 60, BasePrice: 1000, DiscountPercent: 10},
	}}

	uc := NewUseCase(appts, shifts, employees, catalog, &fakeSettingsRepo{}, clients, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func fullDayShift(employeeID string) *fakeShiftRepo {
	return &fakeShiftRepo{shifts: map[string]*domain.Shift{
		domain.ShiftID(employeeID, testDateKey): {
			EmployeeID: employeeID,
			DateKey:    testDateKey,
			Segments:   []domain.Segment{{Start: "09:00", End: "17:00"}},
		},
	}}
}

func bookingRequest(t *testing.T, start string) *Request {
	return &Request{
		Type:        string(domain.TypeBooking),
		EmployeeID:  "emp1",
		Date:        testDate(t),
		StartTime:   types.TimeString(start),
		ServiceID:   "svc1",
		ClientName:  "Milica",
		ClientPhone: "+381 64 123-4567",
	}
}

func TestCreateBooking(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{}
	uc := newTestUseCase(appts, fullDayShift("emp1"), clients)

	resp, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.TypeBooking), resp.Type)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, "Jelena", resp.EmployeeName)

	// Снапшот услуги: цена со скидкой на момент записи
	require.NotNil(t, resp.Price)
	assert.Equal(t, 900, *resp.Price)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Šišanje", *resp.ServiceName)

	// Телефон нормализован, визит записан в картотеку
	require.NotNil(t, resp.ClientPhone)
	assert.Equal(t, "+381641234567", *resp.ClientPhone)
	assert.Equal(t, []string{"+381641234567"}, clients.visits)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	appts := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID: "other", Type: domain.TypeBooking, EmployeeID: "emp1", DateKey: testDateKey,
		StartMin: 630, EndMin: 690, Status: domain.StatusBooked,
	}}}
	uc := newTestUseCase(appts, fullDayShift("emp1"), &fakeClientRepo{})

	// 10:00-11:00 пересекается с 10:30-11:30
	_, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, appts.created)
}

// Поток последовательных запросов на случайные времена: защита пропускает
// только непересекающиеся записи, повтор занятого времени всегда отклоняется
func TestCreateBookingSequentialGuard(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	uc := newTestUseCase(appts, fullDayShift("emp1"), &fakeClientRepo{})

	rng := rand.New(rand.NewSource(13))
	accepted := 0

	for i := 0; i < 200; i++ {
		// Сетка 15 минут, старты 09:00-16:00 - услуга 60 минут влезает в смену
		startMin := 540 + 15*rng.Intn(29)
		_, err := uc.Execute(context.Background(), bookingRequest(t, schedule.MinutesToTime(startMin)))
		if err != nil {
			require.ErrorIs(t, err, ErrSlotTaken)
			continue
		}
		accepted++
	}

	require.NotEmpty(t, appts.created)
	assert.Equal(t, accepted, len(appts.created))

	for i := 0; i < len(appts.created); i++ {
		for j := i + 1; j < len(appts.created); j++ {
			a, b := appts.created[i], appts.created[j]
			assert.False(t, schedule.Overlaps(a.StartMin, a.EndMin, b.StartMin, b.EndMin),
				"accepted bookings %d-%d and %d-%d overlap", a.StartMin, a.EndMin, b.StartMin, b.EndMin)
		}
	}

	// Повторный запрос на уже занятое время отклоняется
	_, err := uc.Execute(context.Background(),
		bookingRequest(t, schedule.MinutesToTime(appts.created[0].StartMin)))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBookingCancelledDoesNotBlock(t *testing.T) {
	appts := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID: "cancelled", Type: domain.TypeBooking, EmployeeID: "emp1", DateKey: testDateKey,
		StartMin: 600, EndMin: 660, Status: domain.StatusCancelled,
	}}}
	uc := newTestUseCase(appts, fullDayShift("emp1"), &fakeClientRepo{})

	_, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	assert.NoError(t, err)
}

func TestCreateBookingBackToBackAllowed(t *testing.T) {
	appts := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID: "before", Type: domain.TypeBooking, EmployeeID: "emp1", DateKey: testDateKey,
		StartMin: 540, EndMin: 600, Status: domain.StatusBooked,
	}}}
	uc := newTestUseCase(appts, fullDayShift("emp1"), &fakeClientRepo{})

	// Предыдущая запись заканчивается ровно в 10:00 - границы не пересекаются
	_, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	assert.NoError(t, err)
}

func TestCreateBookingOutsideShift(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, fullDayShift("emp1"), &fakeClientRepo{})

	// Смена до 17:00, запись 16:30-17:30
	_, err := uc.Execute(context.Background(), bookingRequest(t, "16:30"))
	assert.ErrorIs(t, err, ErrOutsideShift)
}

func TestCreateBookingNoShift(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, &fakeClientRepo{})

	_, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrOutsideShift)
}

func TestCreateBookingOutOfSalonHours(t *testing.T) {
	// 2026-09-20 - воскресенье, салон 09:00-17:00
	shifts := &fakeShiftRepo{shifts: map[string]*domain.Shift{
		domain.ShiftID("emp1", "2026-09-20"): {
			EmployeeID: "emp1",
			DateKey:    "2026-09-20",
			Segments:   []domain.Segment{{Start: "09:00", End: "22:00"}},
		},
	}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, shifts, &fakeClientRepo{})

	req := bookingRequest(t, "16:30")
	req.Date, _ = time.Parse(domain.DateFormat, "2026-09-20")

	// 16:30+60 = 17:30 позже закрытия
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfSalonHours)
}

func TestCreateBlockOutOfSalonHoursAtClose(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, &fakeClientRepo{})

	// Воскресенье закрывается в 17:00: интервал 16:50-17:20 вылезает за край
	sunday, err := time.Parse(domain.DateFormat, "2026-09-20")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		Type:       string(domain.TypeBlock),
		EmployeeID: "emp1",
		Date:       sunday,
		StartTime:  "16:50",
		EndTime:    "17:20",
	})
	assert.ErrorIs(t, err, ErrOutOfSalonHours)
}

func TestCreateBookingEmployeeNotEligible(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	uc := newTestUseCase(appts, fullDayShift("emp1"), &fakeClientRepo{})
	uc.employeeRepo = &fakeEmployeeRepo{employees: map[string]*domain.Employee{
		"emp1": {ID: "emp1", Name: "Jelena", Categories: []string{"cat-nails"}},
	}}

	_, err := uc.Execute(context.Background(), bookingRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrEmployeeNotEligible)
}

func TestCreateBookingDateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, fullDayShift("emp1"), &fakeClientRepo{})

	req := bookingRequest(t, "10:00")
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBookingValidation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, fullDayShift("emp1"), &fakeClientRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"unknown type", func(r *Request) { r.Type = "holiday" }},
		{"empty employee", func(r *Request) { r.EmployeeID = "" }},
		{"no client name", func(r *Request) { r.ClientName = "" }},
		{"no client phone", func(r *Request) { r.ClientPhone = "" }},
		{"no service", func(r *Request) { r.ServiceID = "" }},
		{"bad time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest(t, "10:00")
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBlock(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{}
	// Блокировка не требует смены
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, clients)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:       string(domain.TypeBlock),
		EmployeeID: "emp1",
		Date:       testDate(t),
		StartTime:  "12:00",
		EndTime:    "13:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.TypeBlock), resp.Type)
	assert.Equal(t, string(domain.StatusBlocked), resp.Status)
	assert.Nil(t, resp.Price)
	assert.Empty(t, clients.visits, "block must not touch the client register")
}

func TestCreateBlockOverlapsBooking(t *testing.T) {
	appts := &fakeAppointmentRepo{existing: []*domain.Appointment{{
		ID: "bk", Type: domain.TypeBooking, EmployeeID: "emp1", DateKey: testDateKey,
		StartMin: 720, EndMin: 780, Status: domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(appts, &fakeShiftRepo{shifts: map[string]*domain.Shift{}}, &fakeClientRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Type:       string(domain.TypeBlock),
		EmployeeID: "emp1",
		Date:       testDate(t),
		StartTime:  "12:30",
		EndTime:    "13:30",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}
