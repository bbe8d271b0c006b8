package domain

import "time"

// Employee сотрудник салона.
// Categories - категории, которые сотрудник покрывает целиком;
// Services - отдельные услуги вне этих категорий.
type Employee struct {
	ID         string
	Name       string
	Categories []string
	Services   []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsEligibleFor проверяет, может ли сотрудник выполнить услугу:
// категория услуги входит в Categories ИЛИ сама услуга входит в Services
func (e *Employee) IsEligibleFor(serviceID, categoryID string) bool {
	if categoryID != "" {
		for _, c := range e.Categories {
			if c == categoryID {
				return true
			}
		}
	}
	for _, s := range e.Services {
		if s == serviceID {
			return true
		}
	}
	return false
}
