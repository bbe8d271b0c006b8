package create_appointment

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_appointment: employee not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrEmployeeNotEligible возвращается, когда сотрудник не оказывает услугу
	ErrEmployeeNotEligible = errors.New("create_appointment: employee does not provide this service")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrOutOfSalonHours возвращается, когда интервал выходит за часы работы салона
	ErrOutOfSalonHours = errors.New("create_appointment: interval is outside salon hours")

	// ErrOutsideShift возвращается, когда интервал не помещается в смену сотрудника
	ErrOutsideShift = errors.New("create_appointment: interval is outside employee shift")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующей записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
