package models

import (
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// AppointmentResponse представление записи для внешних слоев
type AppointmentResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	DateKey      string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	ServiceID    *string `json:"serviceId,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	DurationMin  *int    `json:"durationMin,omitempty"`
	Price        *int    `json:"price,omitempty"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SegmentResponse рабочий отрезок смены
type SegmentResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EmployeeDayResponse расписание одного сотрудника на день
type EmployeeDayResponse struct {
	EmployeeID   string                 `json:"employeeId"`
	EmployeeName string                 `json:"employeeName"`
	Segments     []SegmentResponse      `json:"segments"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

// DayScheduleResponse дневной календарь: смены и записи всех сотрудников
type DayScheduleResponse struct {
	DateKey   string                 `json:"date"`
	Employees []*EmployeeDayResponse `json:"employees"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		Type:         string(appt.Type),
		EmployeeID:   appt.EmployeeID,
		EmployeeName: appt.EmployeeName,
		DateKey:      appt.DateKey,
		StartTime:    appt.StartHHMM.String(),
		EndTime:      appt.EndHHMM.String(),
		Status:       string(appt.Status),
		ServiceID:    appt.ServiceID,
		ServiceName:  appt.ServiceName,
		DurationMin:  appt.DurationMin,
		Price:        appt.Price,
		ClientName:   appt.ClientName,
		ClientPhone:  appt.ClientPhone,
		CreatedAt:    appt.CreatedAt,
		UpdatedAt:    appt.UpdatedAt,
	}
}

// FromDomainSegments конвертирует сегменты смены в response
func FromDomainSegments(segments []domain.Segment) []SegmentResponse {
	out := make([]SegmentResponse, len(segments))
	for i, s := range segments {
		out[i] = SegmentResponse{Start: s.Start.String(), End: s.End.String()}
	}
	return out
}

// ToDomainStatus конвертирует строку статуса в domain.AppointmentStatus
func ToDomainStatus(status string) (domain.AppointmentStatus, bool) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusBooked, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusNoShow:
		return domain.AppointmentStatus(status), true
	default:
		return "", false
	}
}
