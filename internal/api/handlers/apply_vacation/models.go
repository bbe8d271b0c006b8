package apply_vacation

import (
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
	applyVacation "github.com/Jelenicat/abeauty/internal/usecase/apply_vacation"
)

// ApplyVacationRequest HTTP request model
type ApplyVacationRequest struct {
	StartDate string `json:"startDate"` // "2026-07-01"
	EndDate   string `json:"endDate"`   // "2026-07-14"
}

// ApplyVacationResponse HTTP response model
type ApplyVacationResponse struct {
	EmployeeID     string   `json:"employeeId"`
	DaysCovered    int      `json:"daysCovered"`
	EntriesWritten int      `json:"entriesWritten"`
	Dates          []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyVacationRequest) ToUseCaseRequest(employeeID string) (*applyVacation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &applyVacation.Request{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyVacation.Response) *ApplyVacationResponse {
	return &ApplyVacationResponse{
		EmployeeID:     resp.EmployeeID,
		DaysCovered:    resp.DaysCovered,
		EntriesWritten: resp.EntriesWritten,
		Dates:          resp.DateKeys,
	}
}
