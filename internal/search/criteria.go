// Package search implements the in-memory inventory filter behind the
// search page. Criteria are a typed clause list: each clause ANDs with
// the others, the selected values inside one clause OR together.
// Query parameters outside the known facet set are dropped at parse
// time, so stray parameters can never zero out results.
package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Bracket is a price-range expression: "< N", "> N" or "LOW-HIGH".
type Bracket struct {
	Low  int
	High int
	// Op is '<', '>' or '-' for a bounded range.
	Op byte
}

// ParseBracket parses a bracket string. Commas and spaces are
// insignificant: "< 35,000" and "<35000" are the same bracket.
func ParseBracket(s string) (Bracket, error) {
	c := strings.NewReplacer(",", "", " ", "").Replace(s)
	switch {
	case strings.HasPrefix(c, "<"):
		n, err := strconv.Atoi(c[1:])
		if err != nil {
			return Bracket{}, fmt.Errorf("bad bracket %q: %w", s, err)
		}
		return Bracket{Op: '<', High: n}, nil
	case strings.HasPrefix(c, ">"):
		n, err := strconv.Atoi(c[1:])
		if err != nil {
			return Bracket{}, fmt.Errorf("bad bracket %q: %w", s, err)
		}
		return Bracket{Op: '>', Low: n}, nil
	default:
		low, high, ok := strings.Cut(c, "-")
		if !ok {
			return Bracket{}, fmt.Errorf("bad bracket %q", s)
		}
		lo, err := strconv.Atoi(low)
		if err != nil {
			return Bracket{}, fmt.Errorf("bad bracket %q: %w", s, err)
		}
		hi, err := strconv.Atoi(high)
		if err != nil {
			return Bracket{}, fmt.Errorf("bad bracket %q: %w", s, err)
		}
		return Bracket{Op: '-', Low: lo, High: hi}, nil
	}
}

// Matches reports whether a price falls inside the bracket. Range
// bounds are inclusive.
func (b Bracket) Matches(price int) bool {
	switch b.Op {
	case '<':
		return price < b.High
	case '>':
		return price > b.Low
	case '-':
		return price >= b.Low && price <= b.High
	}
	return false
}

func (b Bracket) String() string {
	switch b.Op {
	case '<':
		return fmt.Sprintf("< %d", b.High)
	case '>':
		return fmt.Sprintf("> %d", b.Low)
	}
	return fmt.Sprintf("%d-%d", b.Low, b.High)
}

// Criteria is a parsed set of search clauses.
type Criteria struct {
	// Term matches "<make> <model>" as a case-insensitive substring.
	Term string
	// Years: item year must equal one of them.
	Years []int
	// Prices: item price must fall in one of the brackets.
	Prices []Bracket
}

// Empty reports whether no clause is present, in which case the filter
// returns its input unchanged.
func (c Criteria) Empty() bool {
	return c.Term == "" && len(c.Years) == 0 && len(c.Prices) == 0
}

// Query parameter names the search form submits.
const (
	paramTerm   = "search"
	paramYears  = "year"
	paramPrices = "prices"
)

// ParseQuery builds Criteria from request query parameters. Unknown
// keys and unparseable facet values are ignored rather than turned
// into never-matching clauses.
func ParseQuery(values url.Values) Criteria {
	c := Criteria{Term: strings.TrimSpace(values.Get(paramTerm))}
	for _, raw := range values[paramYears] {
		if year, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			c.Years = append(c.Years, year)
		}
	}
	for _, raw := range values[paramPrices] {
		if b, err := ParseBracket(raw); err == nil {
			c.Prices = append(c.Prices, b)
		}
	}
	return c
}
