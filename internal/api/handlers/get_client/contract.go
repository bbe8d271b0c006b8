package get_client

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/reports/models"
)

type ReportsService interface {
	GetClient(ctx context.Context, phone string) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
