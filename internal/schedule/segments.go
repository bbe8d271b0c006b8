package schedule

import (
	"sort"

	"github.com/Jelenicat/abeauty/internal/domain"
)

// NormalizeSegments приводит сегменты смены к канонической форме:
// каждый сегмент ограничивается рабочим временем салона [openMin, closeMin],
// пустые (end <= start) отбрасываются, результат сортируется и сливается.
// Для одинакового набора сегментов результат одинаков независимо от их
// исходного порядка - на это опирается расчет слотов.
func NormalizeSegments(segs []domain.Segment, openMin, closeMin int) []Interval {
	intervals := make([]Interval, 0, len(segs))
	for _, s := range segs {
		iv := Interval{
			Start: Clamp(TimeToMinutes(s.Start.String()), openMin, closeMin),
			End:   Clamp(TimeToMinutes(s.End.String()), openMin, closeMin),
		}
		if iv.End > iv.Start {
			intervals = append(intervals, iv)
		}
	}
	return MergeSegments(intervals)
}

// MergeSegments сортирует интервалы по началу и сливает пересекающиеся
// и соприкасающиеся в минимальный упорядоченный список без пересечений
func MergeSegments(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

// ContainedInAny проверяет, что интервал [start, end) целиком лежит
// хотя бы в одном из сегментов
func ContainedInAny(segments []Interval, start, end int) bool {
	for _, seg := range segments {
		if start >= seg.Start && end <= seg.End {
			return true
		}
	}
	return false
}
