package domain

import (
	"fmt"
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// Segment один непрерывный рабочий интервал смены
type Segment struct {
	Start types.TimeString
	End   types.TimeString
}

// Shift смена сотрудника на один день. Натуральный ключ employeeId+dateKey.
// Сегменты могут быть введены с пересечениями и не по порядку -
// перед использованием их нормализует schedule.NormalizeSegments.
// Отсутствие записи на день означает, что сотрудник в этот день не работает.
type Shift struct {
	EmployeeID string
	DateKey    string // YYYY-MM-DD
	Segments   []Segment
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShiftID детерминированный идентификатор документа смены
func ShiftID(employeeID, dateKey string) string {
	return fmt.Sprintf("%s_%s", employeeID, dateKey)
}
