package table

import (
	"cmp"
	"slices"
)

type Key string

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is the active column and direction. A nil *SortSpec keeps insertion order.
type SortSpec struct {
	Key       Key       `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle returns the spec after a click on the header of key: the same key flips
// direction, another key starts ascending.
func (s *SortSpec) Toggle(key Key) *SortSpec {

	if s != nil && s.Key == key && s.Direction == Ascending {
		return &SortSpec{Key: key, Direction: Descending}
	}

	return &SortSpec{Key: key, Direction: Ascending}
}

// Sort returns a sorted copy of rows. Rows comparing equal keep their insertion
// order when ascending; descending is the exact reverse of ascending.
func Sort[R Row](rows []R, spec *SortSpec) []R {

	sorted := slices.Clone(rows)
	if spec == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b R) int {
		return compareValues(a.SortValue(spec.Key), b.SortValue(spec.Key))
	})

	if spec.Direction == Descending {
		slices.Reverse(sorted)
	}

	return sorted
}

func compareValues(a, b any) int {

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs)
		}
		return 0
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}

	return 0
}

func toFloat(v any) (float64, bool) {

	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
