package apply_shift_template

import (
	"fmt"
	"time"

	applyShiftTemplate "github.com/Jelenicat/abeauty/internal/usecase/apply_shift_template"
	"github.com/Jelenicat/abeauty/pkg/types"
)

// ApplyTemplateRequest HTTP request model.
// Weekdays в нотации time.Weekday: 0 = воскресенье ... 6 = суббота.
type ApplyTemplateRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"` // 1-12
	Weekdays  []int  `json:"weekdays"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// ApplyTemplateResponse HTTP response model
type ApplyTemplateResponse struct {
	EmployeeID  string   `json:"employeeId"`
	DaysApplied int      `json:"daysApplied"`
	DaysSkipped int      `json:"daysSkipped"`
	Dates       []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyTemplateRequest) ToUseCaseRequest(employeeID string) (*applyShiftTemplate.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, wd := range r.Weekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("invalid weekday %d", wd)
		}
		weekdays = append(weekdays, time.Weekday(wd))
	}

	return &applyShiftTemplate.Request{
		EmployeeID: employeeID,
		Year:       r.Year,
		Month:      time.Month(r.Month),
		Weekdays:   weekdays,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyShiftTemplate.Response) *ApplyTemplateResponse {
	return &ApplyTemplateResponse{
		EmployeeID:  resp.EmployeeID,
		DaysApplied: resp.DaysApplied,
		DaysSkipped: resp.DaysSkipped,
		Dates:       resp.DateKeys,
	}
}
