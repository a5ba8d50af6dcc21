package query

import (
	"math"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/garnizeh/staffing/pkg/models"
)

type row struct {
	name string
	kind string
	at   time.Time
}

func rows(n int) []row {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]row, n)
	for i := range out {
		kind := "a"
		if i%2 == 1 {
			kind = "b"
		}
		out[i] = row{name: "item", kind: kind, at: base.AddDate(0, 0, i)}
	}
	return out
}

func TestRunPaginationTotals(t *testing.T) {
	items := rows(45)
	p := Run(items, nil, nil, models.Pagination{Page: 3, PageSize: 20}, 50)
	if p.Total != 45 || p.TotalPages != 3 || len(p.Data) != 5 {
		t.Fatalf("unexpected page: total=%d pages=%d len=%d", p.Total, p.TotalPages, len(p.Data))
	}

	p = Run(items, nil, nil, models.Pagination{Page: 9, PageSize: 20}, 50)
	if len(p.Data) != 0 || p.Total != 45 {
		t.Fatalf("out of range page should be empty with true total, got len=%d total=%d", len(p.Data), p.Total)
	}

	p = Run(items, nil, nil, models.Pagination{Page: -4}, 20)
	if p.Page != 1 || p.PageSize != 20 || len(p.Data) != 20 {
		t.Fatalf("defaults not applied: page=%d size=%d len=%d", p.Page, p.PageSize, len(p.Data))
	}

	p = Run([]row{}, nil, nil, models.Pagination{}, 20)
	if p.Data == nil || p.TotalPages != 0 {
		t.Fatalf("empty input should give non-nil empty data and zero pages")
	}

	p = Run(items, nil, nil, models.Pagination{Page: math.MaxInt, PageSize: 50}, 50)
	if len(p.Data) != 0 || p.Total != 45 || p.TotalPages != 1 {
		t.Fatalf("huge page should be empty, got len=%d total=%d pages=%d", len(p.Data), p.Total, p.TotalPages)
	}

	p = Run(items, nil, nil, models.Pagination{Page: 1, PageSize: math.MaxInt}, 50)
	if len(p.Data) != 45 || p.TotalPages != 1 {
		t.Fatalf("huge page size should hold everything in one page, got len=%d pages=%d", len(p.Data), p.TotalPages)
	}

	p = Run(items, nil, nil, models.Pagination{Page: 2, PageSize: math.MaxInt}, 50)
	if len(p.Data) != 0 || p.TotalPages != 1 {
		t.Fatalf("second page of a single page result should be empty, got len=%d", len(p.Data))
	}
}

func TestPredicatesCompose(t *testing.T) {
	items := rows(10)
	kind := "b"
	from := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	keep := All(
		Equals(&kind, func(r row) string { return r.kind }),
		InRange(&from, &to, func(r row) time.Time { return r.at }),
		Contains("  ITE ", func(r row) string { return r.name }),
		Contains[row]("", nil),
	)
	p := Run(items, keep, nil, models.Pagination{}, 50)
	// days 3..8 inclusive are indexes 2..7; odd indexes are kind b
	if p.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", p.Total)
	}
	for _, r := range p.Data {
		if r.kind != "b" || r.at.Before(from) || r.at.After(to) {
			t.Fatalf("predicate leak: %+v", r)
		}
	}
}

func TestRunSortIsStable(t *testing.T) {
	items := []row{{name: "b", kind: "1"}, {name: "a", kind: "1"}, {name: "b", kind: "2"}, {name: "a", kind: "2"}}
	p := Run(items, nil, func(x, y row) int { return strings.Compare(x.name, y.name) }, models.Pagination{}, 10)
	got := ""
	for _, r := range p.Data {
		got += r.name + r.kind + " "
	}
	if got != "a1 a2 b1 b2 " {
		t.Fatalf("unstable order: %q", got)
	}
	if items[0].name != "b" {
		t.Fatalf("input slice was reordered")
	}
}

func TestCollation(t *testing.T) {
	cmp := Collation(language.English)
	if cmp("apple", "Banana") >= 0 {
		t.Fatalf("collation should ignore case")
	}
	if cmp("Émile", "Fabian") >= 0 {
		t.Fatalf("accented letters should sort with their base letter")
	}
	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Fatalf("expected parse error")
	}
	if tag, err := ParseLocale(""); err != nil || tag != language.English {
		t.Fatalf("empty locale should default to English, got %v %v", tag, err)
	}
}
