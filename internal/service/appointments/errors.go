package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("service.appointments: appointment not found")

	// ErrInvalidStatus возвращается при неизвестном статусе в запросе
	ErrInvalidStatus = errors.New("service.appointments: invalid status")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("service.appointments: invalid status transition")

	// ErrNotCancellable возвращается при отмене записи, которую нельзя отменить
	ErrNotCancellable = errors.New("service.appointments: appointment cannot be cancelled")

	// ErrShiftNotFound возвращается при удалении несуществующей смены
	ErrShiftNotFound = errors.New("service.appointments: shift not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.appointments: internal error")
)
