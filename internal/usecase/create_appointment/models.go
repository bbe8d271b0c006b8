package create_appointment

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// Request модель запроса на создание записи.
//
// Для Type=booking обязательны ServiceID, ClientName и ClientPhone,
// длительность берется из услуги. Для Type=block длительность задается
// явно через EndTime.
type Request struct {
	Type       string           // Тип записи: booking или block
	EmployeeID string           // ID сотрудника
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")

	// Только для booking
	ServiceID   string // ID услуги
	ClientName  string // Имя клиента
	ClientPhone string // Телефон клиента

	// Только для block
	EndTime types.TimeString // Время конца блокировки
	Reason  *string          // Причина блокировки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string           // ID созданной записи
	Type         string           // Тип записи
	EmployeeID   string           // ID сотрудника
	EmployeeName string           // Имя сотрудника (снапшот)
	DateKey      string           // Дата в формате YYYY-MM-DD
	StartTime    types.TimeString // Время начала
	EndTime      types.TimeString // Время конца
	Status       string           // Статус записи

	// Денормализованные данные услуги (только для booking)
	ServiceID   *string // ID услуги
	ServiceName *string // Название услуги
	DurationMin *int    // Длительность в минутах
	Price       *int    // Цена на момент записи, RSD
	ClientName  *string // Имя клиента
	ClientPhone *string // Телефон клиента (нормализованный)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
