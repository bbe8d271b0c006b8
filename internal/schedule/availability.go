package schedule

import "sort"

// Slot кандидат на бронирование: [StartMin, StartMin+durationMin)
type Slot struct {
	StartMin int
	EndMin   int
}

// ComputeSlots вычисляет стартовые времена, в которые услуга длительностью
// durationMin помещается в сегменты смены, не пересекаясь с занятыми
// интервалами. Старты идут сеткой с шагом stepMin от начала сегмента
// либо от конца предыдущего занятого интервала.
//
// segments должны быть нормализованы (NormalizeSegments); busy - занятые
// интервалы любого типа, отменённые записи вызывающий уже исключил.
// При durationMin <= 0 или stepMin <= 0 возвращает пустой список -
// длительность валидируется выше (ErrInvalidInput до любого I/O).
func ComputeSlots(segments []Interval, busy []Interval, durationMin, stepMin int) []Slot {
	if durationMin <= 0 || stepMin <= 0 {
		return []Slot{}
	}

	taken := make([]Interval, 0, len(busy))
	for _, b := range busy {
		if b.End > b.Start {
			taken = append(taken, b)
		}
	}
	sort.Slice(taken, func(i, j int) bool { return taken[i].Start < taken[j].Start })

	slots := make([]Slot, 0)
	for _, seg := range segments {
		cur := seg.Start
		for _, b := range taken {
			// Занятые интервалы вне сегмента пропускаем
			if b.End <= seg.Start || b.Start >= seg.End {
				continue
			}
			freeEnd := b.Start
			if seg.End < freeEnd {
				freeEnd = seg.End
			}
			for t := cur; t+durationMin <= freeEnd; t += stepMin {
				slots = append(slots, Slot{StartMin: t, EndMin: t + durationMin})
			}
			if b.End > cur {
				cur = b.End
			}
		}
		for t := cur; t+durationMin <= seg.End; t += stepMin {
			slots = append(slots, Slot{StartMin: t, EndMin: t + durationMin})
		}
	}
	return slots
}
