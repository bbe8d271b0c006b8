package domain

// DateFormat формат dateKey: YYYY-MM-DD
const DateFormat = "2006-01-02"

// Параметры генерации слотов
const (
	// DefaultStepMinutes шаг сетки стартов слотов
	DefaultStepMinutes = 15

	// MinutesPerDay верхняя граница интервалов (переход через полночь не поддерживается)
	MinutesPerDay = 24 * 60
)

// Ограничения валидации
const (
	MaxVacationDays = 62

	MaxClientNameLength = 120
)
