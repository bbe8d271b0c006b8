package create_appointment

import (
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
	createAppointment "github.com/Jelenicat/abeauty/internal/usecase/create_appointment"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Type       string `json:"type"` // booking | block
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`      // "2026-09-15"
	StartTime  string `json:"startTime"` // "10:00"

	// booking
	ServiceID   string `json:"serviceId,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`

	// block
	EndTime string  `json:"endTime,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	ServiceID    *string `json:"serviceId,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	DurationMin  *int    `json:"durationMin,omitempty"`
	Price        *int    `json:"price,omitempty"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		Type:        r.Type,
		EmployeeID:  r.EmployeeID,
		Date:        date,
		StartTime:   startTime,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Reason:      r.Reason,
	}

	if r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		Type:         resp.Type,
		EmployeeID:   resp.EmployeeID,
		EmployeeName: resp.EmployeeName,
		Date:         resp.DateKey,
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		ServiceID:    resp.ServiceID,
		ServiceName:  resp.ServiceName,
		DurationMin:  resp.DurationMin,
		Price:        resp.Price,
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
