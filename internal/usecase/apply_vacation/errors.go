package apply_vacation

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("apply_vacation: employee not found")

	// ErrRangeTooLong возвращается, когда период отпуска превышает лимит
	ErrRangeTooLong = errors.New("apply_vacation: vacation range is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_vacation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_vacation: internal error")
)
