package report

import (
	"sort"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// Sortable dashboard columns.
const (
	ColumnUser   = "user"
	ColumnMonth  = "month"
	ColumnYear   = "year"
	ColumnAmount = "amount"
)

// Sort describes a single-column sort. An unknown or empty column leaves
// rows in source order.
type Sort struct {
	Column string
	Desc   bool
}

// PageSizes are the selectable page sizes.
var PageSizes = []int{5, 10, 25}

// DefaultPageSize applies when the requested size is not a preset.
const DefaultPageSize = 10

// SortRows returns a sorted copy of rows. The sort is stable, so records
// with equal keys keep their source order. Amount compares numerically;
// the other columns compare as strings.
func SortRows(rows []domain.Contribution, s Sort) []domain.Contribution {
	out := append([]domain.Contribution(nil), rows...)
	less := lessFunc(s.Column)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if s.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(column string) func(a, b domain.Contribution) bool {
	switch column {
	case ColumnUser:
		return func(a, b domain.Contribution) bool { return a.User < b.User }
	case ColumnMonth:
		return func(a, b domain.Contribution) bool { return a.Month < b.Month }
	case ColumnYear:
		return func(a, b domain.Contribution) bool { return a.Year < b.Year }
	case ColumnAmount:
		return func(a, b domain.Contribution) bool { return a.Amount < b.Amount }
	default:
		return nil
	}
}

// NormalizeSize maps any requested page size onto the preset list.
func NormalizeSize(size int) int {
	for _, s := range PageSizes {
		if size == s {
			return size
		}
	}
	return DefaultPageSize
}

// Paginate returns the fixed-size window for the given zero-based page,
// the clamped page index, and the total page count. An empty row set still
// reports one (empty) page.
func Paginate(rows []domain.Contribution, page, size int) ([]domain.Contribution, int, int) {
	size = NormalizeSize(size)

	totalPages := (len(rows) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * size
	if start > len(rows) {
		start = len(rows)
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, totalPages
}
