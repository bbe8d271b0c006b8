package apply_shift_template

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// Request модель запроса на применение шаблона смен к месяцу.
// Weekdays - дни недели, по которым сотрудник работает.
type Request struct {
	EmployeeID string           // ID сотрудника
	Year       int              // Год (например, 2026)
	Month      time.Month       // Месяц
	Weekdays   []time.Weekday   // Рабочие дни недели
	StartTime  types.TimeString // Начало смены
	EndTime    types.TimeString // Конец смены
}

// Response модель ответа с результатом применения шаблона
type Response struct {
	EmployeeID  string   // ID сотрудника
	DaysApplied int      // Число дней, на которые записана смена
	DaysSkipped int      // Число дней, пропущенных из-за часов салона
	DateKeys    []string // Даты записанных смен
}
