package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/pkg/types"
)

func seg(start, end string) domain.Segment {
	return domain.Segment{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestMergeSegments(t *testing.T) {
	tests := []struct {
		name     string
		input    []Interval
		expected []Interval
	}{
		{
			name:     "empty",
			input:    []Interval{},
			expected: []Interval{},
		},
		{
			name:     "single",
			input:    []Interval{{540, 720}},
			expected: []Interval{{540, 720}},
		},
		{
			name:     "disjoint stay separate",
			input:    []Interval{{540, 720}, {780, 1020}},
			expected: []Interval{{540, 720}, {780, 1020}},
		},
		{
			name:     "overlapping merge",
			input:    []Interval{{540, 750}, {720, 1020}},
			expected: []Interval{{540, 1020}},
		},
		{
			name:     "touching merge",
			input:    []Interval{{540, 720}, {720, 1020}},
			expected: []Interval{{540, 1020}},
		},
		{
			name:     "nested collapse",
			input:    []Interval{{540, 1020}, {600, 660}},
			expected: []Interval{{540, 1020}},
		},
		{
			name:     "unsorted input",
			input:    []Interval{{780, 1020}, {540, 720}},
			expected: []Interval{{540, 720}, {780, 1020}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeSegments(tt.input))
		})
	}
}

// Результат слияния не зависит от порядка сегментов на входе
func TestMergeSegmentsOrderIndependent(t *testing.T) {
	base := []Interval{{480, 600}, {590, 720}, {720, 780}, {900, 1020}, {950, 1000}}
	expected := MergeSegments(base)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]Interval, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, expected, MergeSegments(shuffled))
	}
}

func randomIntervals(rng *rand.Rand, n int) []Interval {
	out := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		start := rng.Intn(domain.MinutesPerDay - 1)
		end := start + 1 + rng.Intn(domain.MinutesPerDay-start-1)
		out = append(out, Interval{start, end})
	}
	return out
}

func minuteCoverage(intervals []Interval) []bool {
	covered := make([]bool, domain.MinutesPerDay)
	for _, iv := range intervals {
		for m := iv.Start; m < iv.End; m++ {
			covered[m] = true
		}
	}
	return covered
}

// Слияние покрывает ровно те же минуты, что и вход,
// а результат отсортирован и не содержит смежных интервалов
func TestMergeSegmentsPreservesCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		input := randomIntervals(rng, 1+rng.Intn(8))
		merged := MergeSegments(input)

		require.Equal(t, minuteCoverage(input), minuteCoverage(merged))

		for k := 1; k < len(merged); k++ {
			require.Greater(t, merged[k].Start, merged[k-1].End,
				"intervals %v and %v must be disjoint and non-touching", merged[k-1], merged[k])
		}
	}
}

func TestMergeSegmentsDoesNotMutateInput(t *testing.T) {
	input := []Interval{{780, 1020}, {540, 720}}
	MergeSegments(input)
	assert.Equal(t, []Interval{{780, 1020}, {540, 720}}, input)
}

func TestNormalizeSegments(t *testing.T) {
	openMin, closeMin := 480, 1320 // 08:00-22:00

	t.Run("clamps to salon hours", func(t *testing.T) {
		got := NormalizeSegments([]domain.Segment{seg("07:00", "23:00")}, openMin, closeMin)
		assert.Equal(t, []Interval{{480, 1320}}, got)
	})

	t.Run("drops segment fully outside hours", func(t *testing.T) {
		got := NormalizeSegments([]domain.Segment{seg("22:00", "23:30")}, openMin, closeMin)
		assert.Empty(t, got)
	})

	t.Run("drops inverted segment", func(t *testing.T) {
		got := NormalizeSegments([]domain.Segment{seg("14:00", "12:00")}, openMin, closeMin)
		assert.Empty(t, got)
	})

	t.Run("merges after clamping", func(t *testing.T) {
		got := NormalizeSegments([]domain.Segment{
			seg("09:00", "13:00"),
			seg("12:00", "17:00"),
		}, openMin, closeMin)
		assert.Equal(t, []Interval{{540, 1020}}, got)
	})

	t.Run("sunday hours shrink the segment", func(t *testing.T) {
		// Воскресенье 09:00-17:00, смена записана как 08:00-22:00
		got := NormalizeSegments([]domain.Segment{seg("08:00", "22:00")}, 540, 1020)
		require.Len(t, got, 1)
		assert.Equal(t, Interval{540, 1020}, got[0])
	})
}

func TestContainedInAny(t *testing.T) {
	segments := []Interval{{540, 720}, {780, 1020}}

	assert.True(t, ContainedInAny(segments, 540, 720))
	assert.True(t, ContainedInAny(segments, 600, 660))
	assert.True(t, ContainedInAny(segments, 780, 810))
	assert.False(t, ContainedInAny(segments, 700, 790), "interval spanning the gap")
	assert.False(t, ContainedInAny(segments, 500, 560))
	assert.False(t, ContainedInAny(segments, 1000, 1030))
	assert.False(t, ContainedInAny(nil, 540, 600))
}
