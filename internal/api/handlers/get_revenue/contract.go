package get_revenue

import (
	"context"

	"github.com/Jelenicat/abeauty/internal/service/reports/models"
)

type ReportsService interface {
	GetRevenue(ctx context.Context, startDate, endDate string) (*models.RevenueReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
