package lineup

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
)

// Entry is one (athlete, category) pair awaiting a running order.
type Entry struct {
	AthleteID uint
	BibNumber string
	Category  string
}

// Flatten emits one entry per category of every registration. Registrations
// whose athlete could not be resolved are skipped.
func Flatten(regs []registration.Registration) []Entry {
	var entries []Entry
	for _, reg := range regs {
		if reg.Athlete == nil {
			continue
		}
		for _, c := range reg.Categories {
			entries = append(entries, Entry{
				AthleteID: reg.AthleteID,
				BibNumber: reg.Athlete.Bib(),
				Category:  c.DisplayName,
			})
		}
	}
	return entries
}

func parseBib(bib string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(bib), 10, 64)
	return n, err == nil
}

// compareBib orders non-numeric and empty bibs before numeric ones, numeric
// bibs by value, and falls back to the raw text.
func compareBib(a, b string) int {
	na, okA := parseBib(a)
	nb, okB := parseBib(b)
	switch {
	case okA && !okB:
		return 1
	case !okA && okB:
		return -1
	case okA && okB:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func compareEntries(a, b Entry) int {
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := compareBib(a.BibNumber, b.BibNumber); c != 0 {
		return c
	}
	return cmp.Compare(a.AthleteID, b.AthleteID)
}

// Order sorts entries by category, then bib, then athlete id and numbers them
// 1..N. The key is total so the result does not depend on input order.
func Order(entries []Entry) []Item {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, compareEntries)

	items := make([]Item, len(sorted))
	for i, e := range sorted {
		items[i] = Item{
			Order:     i + 1,
			AthleteID: e.AthleteID,
			Category:  e.Category,
			IsDisplay: true,
		}
	}
	return items
}

// Renumber rewrites Order from array position.
func Renumber(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Order = i + 1
		out[i] = it
	}
	return out
}

// ByOrder returns a copy of items sorted by Order.
func ByOrder(items []Item) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int { return cmp.Compare(a.Order, b.Order) })
	return sorted
}

// Categories lists the distinct categories of items in running order.
func Categories(items []Item) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range ByOrder(items) {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
