package search

import (
	"strings"

	"github.com/jthomsen/motorlot/internal/domain"
)

// Filter returns the vehicles matching every present clause, in input
// order. Empty criteria return the input slice as-is. No matches
// return an empty (non-nil) slice so callers can render "no results"
// without a nil check.
//
// The filter walks a fresh full snapshot on every call; there is no
// index and no pagination. Fine at dealership scale, a known limit
// beyond it.
func Filter(items []domain.Vehicle, c Criteria) []domain.Vehicle {
	if c.Empty() {
		return items
	}
	out := make([]domain.Vehicle, 0, len(items))
	for _, item := range items {
		if matches(item, c) {
			out = append(out, item)
		}
	}
	return out
}

func matches(v domain.Vehicle, c Criteria) bool {
	if c.Term != "" && !strings.Contains(strings.ToLower(v.Name()), strings.ToLower(c.Term)) {
		return false
	}
	if len(c.Years) > 0 && !yearIn(v.Year, c.Years) {
		return false
	}
	if len(c.Prices) > 0 && !priceIn(v.Price, c.Prices) {
		return false
	}
	return true
}

func yearIn(year int, years []int) bool {
	for _, y := range years {
		if year == y {
			return true
		}
	}
	return false
}

func priceIn(price int, brackets []Bracket) bool {
	for _, b := range brackets {
		if b.Matches(price) {
			return true
		}
	}
	return false
}
