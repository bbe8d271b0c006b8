package reports

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.reports: invalid input data")

	// ErrClientNotFound возвращается, если клиента нет в картотеке
	ErrClientNotFound = errors.New("service.reports: client not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.reports: internal error")
)
