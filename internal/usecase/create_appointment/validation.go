package create_appointment

import (
	"fmt"
	"time"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Type != string(domain.TypeBooking) && req.Type != string(domain.TypeBlock) {
		return fmt.Errorf("%w: type must be booking or block", ErrInvalidInput)
	}

	if req.EmployeeID == "" {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	switch req.Type {
	case string(domain.TypeBooking):
		if req.ServiceID == "" {
			return fmt.Errorf("%w: serviceId is required for booking", ErrInvalidInput)
		}
		if req.ClientName == "" {
			return fmt.Errorf("%w: clientName is required for booking", ErrInvalidInput)
		}
		if len(req.ClientName) > domain.MaxClientNameLength {
			return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
		}
		if domain.NormalizePhone(req.ClientPhone) == "" {
			return fmt.Errorf("%w: clientPhone is required for booking", ErrInvalidInput)
		}
	case string(domain.TypeBlock):
		if req.EndTime.IsZero() {
			return fmt.Errorf("%w: endTime is required for block", ErrInvalidInput)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		if !req.StartTime.IsBefore(req.EndTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
