package get_available_slots

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// Request модель запроса доступных слотов.
// EmployeeID = nil означает режим "любой мастер": слоты собираются
// по всем сотрудникам, оказывающим услугу.
type Request struct {
	ServiceID  string    // ID услуги
	Date       time.Time // Дата (без времени)
	EmployeeID *string   // ID конкретного сотрудника (опционально)
}

// Slot доступный слот у конкретного сотрудника
type Slot struct {
	EmployeeID   string           // ID сотрудника
	EmployeeName string           // Имя сотрудника
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время конца (начало + длительность услуги)
}

// Response модель ответа со слотами, отсортированными по времени начала
type Response struct {
	ServiceID   string // ID услуги
	DateKey     string // Дата в формате YYYY-MM-DD
	DurationMin int    // Длительность услуги в минутах
	Slots       []Slot // Доступные слоты
}
