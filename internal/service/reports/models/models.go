package models

import (
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// RevenueRowResponse выручка одного сотрудника за день
type RevenueRowResponse struct {
	Date         string `json:"date"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Bookings     int    `json:"bookings"`
	Total        int    `json:"total"`
}

// RevenueReportResponse отчет по выручке за период
type RevenueReportResponse struct {
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Rows          []*RevenueRowResponse `json:"rows"`
	TotalBookings int                   `json:"totalBookings"`
	TotalRevenue  int                   `json:"totalRevenue"`
}

// ClientResponse карточка клиента
type ClientResponse struct {
	Phone       string    `json:"phone"`
	Name        string    `json:"name"`
	VisitCount  int       `json:"visitCount"`
	NoShowCount int       `json:"noShowCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientListResponse картотека клиентов
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// FromDomainRevenueRows конвертирует строки отчета в response с итогами
func FromDomainRevenueRows(startDate, endDate string, rows []*domain.RevenueRow) *RevenueReportResponse {
	resp := &RevenueReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      make([]*RevenueRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, &RevenueRowResponse{
			Date:         row.DateKey,
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Bookings:     row.Bookings,
			Total:        row.Total,
		})
		resp.TotalBookings += row.Bookings
		resp.TotalRevenue += row.Total
	}
	return resp
}

// FromDomainClient конвертирует карточку клиента в response
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		Phone:       c.Phone,
		Name:        c.Name,
		VisitCount:  c.VisitCount,
		NoShowCount: c.NoShowCount,
		CreatedAt:   c.CreatedAt,
	}
}

// FromDomainClientList конвертирует картотеку клиентов в response
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]*ClientResponse, 0, len(clients)),
		Total:   len(clients),
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, FromDomainClient(c))
	}
	return resp
}
