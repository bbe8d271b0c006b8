package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAppointmentInactive возвращается при попытке перенести отмененную запись
	ErrAppointmentInactive = errors.New("reschedule_appointment: appointment is not active")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrOutOfSalonHours возвращается, когда интервал выходит за часы работы салона
	ErrOutOfSalonHours = errors.New("reschedule_appointment: interval is outside salon hours")

	// ErrOutsideShift возвращается, когда интервал не помещается в смену сотрудника
	ErrOutsideShift = errors.New("reschedule_appointment: interval is outside employee shift")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующей записью
	ErrSlotTaken = errors.New("reschedule_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
