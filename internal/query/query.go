// Package query filters, orders and paginates entity collections.
package query

import (
	"slices"
	"strings"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// All AND-composes predicates; nil entries are skipped.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Equals keeps items whose field equals *want. A nil want keeps everything.
func Equals[T any, V comparable](want *V, field func(T) V) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(item T) bool { return field(item) == w }
}

// Contains is a case-insensitive substring match. Blank needles keep everything.
func Contains[T any](needle string, field func(T) string) Predicate[T] {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		return strings.Contains(strings.ToLower(field(item)), needle)
	}
}

// InRange keeps items whose timestamp lies within [from, to]; nil bounds are open.
func InRange[T any](from, to *time.Time, field func(T) time.Time) Predicate[T] {
	if from == nil && to == nil {
		return nil
	}
	return func(item T) bool {
		ts := field(item)
		if from != nil && ts.Before(*from) {
			return false
		}
		if to != nil && ts.After(*to) {
			return false
		}
		return true
	}
}

// Run filters items, sorts the survivors stably with cmp and slices out the
// requested page. The input slice is not modified.
func Run[T any](items []T, keep Predicate[T], cmp func(a, b T) int, p models.Pagination, defaultSize int) models.Page[T] {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			matched = append(matched, it)
		}
	}
	if cmp != nil {
		slices.SortStableFunc(matched, cmp)
	}

	page, size := normalize(p, defaultSize)
	total := len(matched)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	out := models.Page[T]{
		Data:       []T{},
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}
	// page <= pages keeps (page-1)*size below total, so nothing overflows
	if page > pages {
		return out
	}
	start := (page - 1) * size
	end := start + min(size, total-start)
	out.Data = matched[start:end]
	return out
}

func normalize(p models.Pagination, defaultSize int) (page, size int) {
	page, size = p.Page, p.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size < 1 {
		size = 1
	}
	return page, size
}
