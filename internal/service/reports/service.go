package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
	clientRepo "github.com/Jelenicat/abeauty/internal/infra/storage/client"
	"github.com/Jelenicat/abeauty/internal/service/reports/models"
)

// Service сервис отчетности: выручка и клиентская картотека
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетности
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// GetRevenue строит отчет по выручке за период (границы включительно).
// В отчет входят все брони кроме отменённых, включая неявки - по снапшоту
// цены на момент записи.
func (s *Service) GetRevenue(ctx context.Context, startDate, endDate string) (*models.RevenueReportResponse, error) {
	s.logger.Info("GetRevenue: period=%s..%s", startDate, endDate)

	if err := validateDateKey(startDate); err != nil {
		return nil, err
	}
	if err := validateDateKey(endDate); err != nil {
		return nil, err
	}
	if endDate < startDate {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	rows, err := s.appointmentRepo.GetRevenueByDay(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetRevenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRevenue - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRevenueRows(startDate, endDate, rows)
	s.logger.Info("GetRevenue: %d rows, %d bookings, total=%d RSD",
		len(resp.Rows), resp.TotalBookings, resp.TotalRevenue)
	return resp, nil
}

// ListClients возвращает клиентскую картотеку с счетчиками визитов и неявок
func (s *Service) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	s.logger.Info("ListClients: fetching client register")

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClients: %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// GetClient возвращает карточку клиента по телефону.
// Телефон нормализуется так же, как при записи визита.
func (s *Service) GetClient(ctx context.Context, phone string) (*models.ClientResponse, error) {
	normalized := domain.NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty client phone", ErrInvalidInput)
	}

	s.logger.Info("GetClient: phone=%s", normalized)

	client, err := s.clientRepo.GetByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetClient: client %s not found", normalized)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClient - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// validateDateKey проверяет формат YYYY-MM-DD
func validateDateKey(dateKey string) error {
	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, dateKey)
	}
	return nil
}
