// Package research scores and merges company research notes.
package research

import (
	"math"
	"strings"

	"github.com/garnizeh/staffing/pkg/models"
)

// DateLayout is the calendar-date format of lastResearchDate.
const DateLayout = "2006-01-02"

func fields(r *models.Research) []*string {
	return []*string{r.ValueProposition, r.Mission, r.Vision, r.SalesPitch}
}

// Completeness is the share of the four research fields with non-blank
// content, rounded to a whole percentage.
func Completeness(r *models.Research) int {
	if r == nil {
		return 0
	}
	all := fields(r)
	filled := 0
	for _, f := range all {
		if f != nil && strings.TrimSpace(*f) != "" {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(len(all))))
}

// Merge applies a patch to a copy of cur (which may be nil). A nil patch field
// keeps the current value, an empty string clears it.
func Merge(cur *models.Research, p models.ResearchPatch) *models.Research {
	out := Clone(cur)
	if out == nil {
		out = &models.Research{}
	}
	set := func(dst **string, v *string) {
		if v == nil {
			return
		}
		if strings.TrimSpace(*v) == "" {
			*dst = nil
			return
		}
		s := *v
		*dst = &s
	}
	set(&out.ValueProposition, p.ValueProposition)
	set(&out.Mission, p.Mission)
	set(&out.Vision, p.Vision)
	set(&out.SalesPitch, p.SalesPitch)
	out.CompletenessPercent = Completeness(out)
	return out
}

// Clone deep-copies research notes.
func Clone(r *models.Research) *models.Research {
	if r == nil {
		return nil
	}
	out := *r
	for _, f := range []**string{&out.ValueProposition, &out.Mission, &out.Vision, &out.SalesPitch} {
		if *f != nil {
			s := **f
			*f = &s
		}
	}
	return &out
}
