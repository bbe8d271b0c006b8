package domain

import (
	"strings"
	"time"
)

// Client клиент салона, идентифицируется нормализованным телефоном
type Client struct {
	Phone       string
	Name        string
	VisitCount  int
	NoShowCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizePhone приводит телефон к каноническому виду:
// остаются цифры и ведущий "+", остальные символы отбрасываются
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
