package reschedule_appointment

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// Request модель запроса на перенос записи.
// Длительность сохраняется, меняются только дата и время начала.
type Request struct {
	AppointmentID string           // ID переносимой записи
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с обновленной записью
type Response struct {
	ID           string           // ID записи
	Type         string           // Тип записи
	EmployeeID   string           // ID сотрудника
	EmployeeName string           // Имя сотрудника
	DateKey      string           // Новая дата в формате YYYY-MM-DD
	StartTime    types.TimeString // Новое время начала
	EndTime      types.TimeString // Новое время конца
	Status       string           // Статус записи
}
