package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	clientRepo "github.com/Jelenicat/abeauty/internal/infra/storage/client"
)

type fakeAppointmentRepo struct {
	rows []*domain.RevenueRow
}

func (f *fakeAppointmentRepo) GetRevenueByDay(_ context.Context, startDate, endDate string) ([]*domain.RevenueRow, error) {
	out := make([]*domain.RevenueRow, 0)
	for _, r := range f.rows {
		if r.DateKey >= startDate && r.DateKey <= endDate {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]*domain.Client
}

func (f *fakeClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	c, ok := f.clients[phone]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	appts := &fakeAppointmentRepo{rows: []*domain.RevenueRow{
		{DateKey: "2026-09-14", EmployeeID: "emp1", EmployeeName: "Jelena", Bookings: 3, Total: 2700},
		{DateKey: "2026-09-15", EmployeeID: "emp1", EmployeeName: "Jelena", Bookings: 1, Total: 900},
		{DateKey: "2026-09-15", EmployeeID: "emp2", EmployeeName: "Ana", Bookings: 2, Total: 2400},
	}}
	clients := &fakeClientRepo{clients: map[string]*domain.Client{
		"+381641234567": {Phone: "+381641234567", Name: "Milica", VisitCount: 5, NoShowCount: 1},
	}}
	return NewService(appts, clients, nopLogger{})
}

func TestGetRevenue(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetRevenue(context.Background(), "2026-09-14", "2026-09-15")
	require.NoError(t, err)

	require.Len(t, resp.Rows, 3)
	assert.Equal(t, 6, resp.TotalBookings)
	assert.Equal(t, 6000, resp.TotalRevenue)
}

func TestGetRevenueSingleDay(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetRevenue(context.Background(), "2026-09-15", "2026-09-15")
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	assert.Equal(t, 3300, resp.TotalRevenue)
}

func TestGetRevenueValidation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start date", "14.09.2026", "2026-09-15"},
		{"bad end date", "2026-09-14", "tomorrow"},
		{"end before start", "2026-09-15", "2026-09-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetRevenue(context.Background(), tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListClients(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ListClients(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "Milica", resp.Clients[0].Name)
}

func TestGetClient(t *testing.T) {
	svc := newTestService()

	// Телефон нормализуется перед поиском
	resp, err := svc.GetClient(context.Background(), "+381 64 123-4567")
	require.NoError(t, err)

	assert.Equal(t, "+381641234567", resp.Phone)
	assert.Equal(t, 5, resp.VisitCount)
	assert.Equal(t, 1, resp.NoShowCount)
}

func TestGetClientNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetClient(context.Background(), "+381600000000")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetClientEmptyPhone(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetClient(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
