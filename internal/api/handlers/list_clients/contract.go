package list_clients

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/reports/models"
)

type ReportsService interface {
	ListClients(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
