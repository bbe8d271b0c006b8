package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/Jelenicat/abeauty/internal/infra/storage/catalog"
	"github.com/Jelenicat/abeauty/internal/service/catalog/models"
)

// Service сервис каталога услуг для клиентского потока бронирования
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices возвращает услуги каталога, опционально по категории.
// Фильтр по несуществующей категории - ошибка, а не пустой список.
func (s *Service) ListServices(ctx context.Context, categoryID *string) (*models.ServiceListResponse, error) {
	if categoryID != nil {
		s.logger.Info("ListServices: category=%s", *categoryID)

		if _, err := s.catalogRepo.GetCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
				s.logger.Warn("ListServices: category %s not found", *categoryID)
				return nil, ErrCategoryNotFound
			}
			s.logger.Error("ListServices: failed to get category %s: %v", *categoryID, err)
			return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
		}
	} else {
		s.logger.Info("ListServices: full catalog")
	}

	services, err := s.catalogRepo.ListServices(ctx, categoryID)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: %d services", len(services))
	return models.FromDomainServices(services), nil
}
