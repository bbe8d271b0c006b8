package catalog

import "errors"

var (
	// ErrCategoryNotFound возвращается при фильтре по несуществующей категории
	ErrCategoryNotFound = errors.New("service.catalog: category not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.catalog: internal error")
)
