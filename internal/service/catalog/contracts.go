package catalog

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	ListServices(ctx context.Context, categoryID *string) ([]*domain.Service, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
