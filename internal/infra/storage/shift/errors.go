package shift

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смены на день нет
	// (сотрудник в этот день не работает)
	ErrShiftNotFound = errors.New("shift.repository: shift not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shift.repository: failed to scan row")

	// ErrEncodeSegments возвращается при ошибке сериализации сегментов
	ErrEncodeSegments = errors.New("shift.repository: failed to encode segments")
)
