// Package report holds the pure transformations behind the dashboard
// table: filtering, dropdown option derivation, sorting, pagination, and
// the two export serializers. Everything operates on an in-memory snapshot
// of the contribution list; nothing here touches the record store.
package report

import (
	"strings"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// Filter narrows the contribution list by exact string match. An empty
// field imposes no constraint.
type Filter struct {
	User  string
	Month string
	Year  string
}

// IsZero reports whether no filter field is set.
func (f Filter) IsZero() bool {
	return f.User == "" && f.Month == "" && f.Year == ""
}

// Options holds the distinct dropdown values observed across the full
// record set, in first-appearance order. Records with a malformed month
// field contribute an empty token, which never matches a concrete
// selection.
type Options struct {
	Users  []string
	Months []string
	Years  []string
}

// monthYearTokens derives the month and year tokens used for filtering.
// Legacy records hold a combined "Month Year" string in the month field;
// records written by this application hold a bare month name, and their
// own year field supplies the year token. A record with no month field
// yields empty tokens.
func monthYearTokens(c domain.Contribution) (month, year string) {
	fields := strings.Fields(c.Month)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], strings.TrimSpace(c.Year)
	default:
		return fields[0], fields[1]
	}
}

// Apply returns the subset of rows matching every set filter field. It is
// a pure function: rows is never mutated and the result preserves source
// order.
func Apply(rows []domain.Contribution, f Filter) []domain.Contribution {
	out := make([]domain.Contribution, 0, len(rows))
	for _, c := range rows {
		if f.User != "" && c.User != f.User {
			continue
		}
		month, year := monthYearTokens(c)
		if f.Month != "" && month != f.Month {
			continue
		}
		if f.Year != "" && year != f.Year {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CollectOptions computes the distinct filter options across the full
// record set. It is recomputed on every load rather than cached; the data
// is at most a few hundred rows.
func CollectOptions(rows []domain.Contribution) Options {
	var opts Options
	seenUsers := make(map[string]struct{})
	seenMonths := make(map[string]struct{})
	seenYears := make(map[string]struct{})

	for _, c := range rows {
		month, year := monthYearTokens(c)
		if _, ok := seenUsers[c.User]; !ok {
			seenUsers[c.User] = struct{}{}
			opts.Users = append(opts.Users, c.User)
		}
		if _, ok := seenMonths[month]; !ok {
			seenMonths[month] = struct{}{}
			opts.Months = append(opts.Months, month)
		}
		if _, ok := seenYears[year]; !ok {
			seenYears[year] = struct{}{}
			opts.Years = append(opts.Years, year)
		}
	}
	return opts
}
