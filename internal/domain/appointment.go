package domain

import (
	"time"

	"github.com/Jelenicat/abeauty/pkg/types"
)

// AppointmentType тип записи в расписании.
// Все четыре типа занимают время на одной и той же шкале сотрудника
// и одинаково участвуют в проверке пересечений.
type AppointmentType string

const (
	TypeBooking  AppointmentType = "booking"
	TypeBlock    AppointmentType = "block"
	TypeBreak    AppointmentType = "break"
	TypeVacation AppointmentType = "vacation"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "noshow"
	StatusBlocked   AppointmentStatus = "blocked"
	StatusBreak     AppointmentStatus = "break"
	StatusVacation  AppointmentStatus = "vacation"
)

// Appointment запись в расписании сотрудника: бронирование клиента,
// блокировка, перерыв или отпуск. Общая часть - интервал [StartMin, EndMin)
// на дату DateKey; поля услуги/клиента заполнены только для бронирований
// (денормализованный снимок на момент записи).
type Appointment struct {
	ID           string
	Type         AppointmentType
	EmployeeID   string
	EmployeeName string
	DateKey      string // YYYY-MM-DD
	StartHHMM    types.TimeString
	EndHHMM      types.TimeString
	StartMin     int
	EndMin       int
	Status       AppointmentStatus

	// Только для type = booking
	ServiceID   *string
	ServiceName *string
	DurationMin *int
	Price       *int // финальная цена в RSD на момент записи
	ClientName  *string
	ClientPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает время на шкале.
// Отменённые и no-show записи время не занимают, но хранятся для истории.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsBooking возвращает true для клиентских бронирований
func (a *Appointment) IsBooking() bool {
	return a.Type == TypeBooking
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Type == TypeBooking &&
		(a.Status == StatusBooked || a.Status == StatusConfirmed)
}

// CanTransitionTo проверяет допустимость перехода статуса:
// booked -> confirmed | cancelled | noshow; cancelled и noshow терминальны
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Type != TypeBooking {
		return false
	}
	switch a.Status {
	case StatusBooked:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusNoShow
	default:
		return false
	}
}

// AppointmentFilter фильтр выборки записей
type AppointmentFilter struct {
	EmployeeID      *string // nil - все сотрудники
	DateKey         *string // конкретный день
	StartDate       *string // начало периода (включительно)
	EndDate         *string // конец периода (включительно)
	Type            *AppointmentType
	IncludeInactive bool // включать ли отменённые и no-show
}

// InactiveStatuses статусы, не занимающие время на шкале
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
