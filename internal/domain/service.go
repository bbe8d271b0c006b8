package domain

import (
	"math"
	"time"
)

// Service услуга каталога. После бронирования данные услуги
// снимаются в запись (snapshot) и дальнейшие правки каталога
// на существующие записи не влияют.
type Service struct {
	ID              string
	Name            string
	CategoryID      string
	DurationMin     int
	BasePrice       int // RSD
	DiscountPercent int // 0-100
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FinalPrice цена со скидкой: round(base * (100 - discount) / 100)
func (s *Service) FinalPrice() int {
	d := s.DiscountPercent
	if d < 0 {
		d = 0
	}
	if d > 100 {
		d = 100
	}
	return int(math.Round(float64(s.BasePrice) * float64(100-d) / 100))
}

// Category категория каталога услуг
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
