package apply_vacation

import "time"

// Request модель запроса на оформление отпуска.
// Отпуск закрывает все смены сотрудника в периоде (границы включительно).
type Request struct {
	EmployeeID string    // ID сотрудника
	StartDate  time.Time // Первый день отпуска
	EndDate    time.Time // Последний день отпуска
}

// Response модель ответа с результатом оформления отпуска
type Response struct {
	EmployeeID     string   // ID сотрудника
	DaysCovered    int      // Число дней со сменами, закрытых отпуском
	EntriesWritten int      // Число созданных записей отпуска
	DateKeys       []string // Даты закрытых смен
}
