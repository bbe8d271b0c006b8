// Package schedule содержит чистую вычислительную часть планирования:
// минутную арифметику, нормализацию сегментов смен и расчет свободных
// слотов. Никакого I/O - все функции детерминированы.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// TimeToMinutes разбирает "HH:MM" в минуты от полуночи.
// Разбор нестрогий: отсутствующие или некорректные части считаются нулём,
// диапазоны не проверяются - границы обязан проверять вызывающий.
// Строгая валидация формата живет в types.TimeString на границе API.
func TimeToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return h*60 + m
}

// MinutesToTime форматирует минуты от полуночи в "HH:MM" с ведущими нулями.
// Работает только в пределах одних суток, переноса на следующий день нет.
func MinutesToTime(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps проверяет пересечение полуоткрытых интервалов:
// max(aStart,bStart) < min(aEnd,bEnd). Соприкасающиеся интервалы
// (aEnd == bStart) пересечением НЕ считаются.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	return lo < hi
}

// Clamp ограничивает n диапазоном [lo, hi]
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
