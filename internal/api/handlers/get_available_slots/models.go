package get_available_slots

import (
	getAvailableSlots "github.com/Jelenicat/abeauty/internal/usecase/get_available_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ServiceID   string         `json:"serviceId"`
	Date        string         `json:"date"`
	DurationMin int            `json:"durationMin"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			StartTime:    s.StartTime.String(),
			EndTime:      s.EndTime.String(),
		})
	}
	return &AvailabilityResponse{
		ServiceID:   resp.ServiceID,
		Date:        resp.DateKey,
		DurationMin: resp.DurationMin,
		Slots:       slots,
	}
}
