package util

import (
	"strings"

	"golang.org/x/text/cases"

	"exusiai.dev/roadmap-tracker/internal/model"
)

// MatchesWeek reports whether the week should be shown for the query. An empty
// query matches every week; otherwise the case-folded query must occur in the
// case-folded title, focus and day labels joined by spaces.
func MatchesWeek(week *model.Week, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	haystack := week.Title + " " + week.Focus + " " + strings.Join(week.Days, " ")
	return strings.Contains(fold.String(haystack), fold.String(query))
}

// SearchWeeks lists every week in the catalog that matches the query.
func SearchWeeks(catalog *model.Catalog, query string) []*model.SearchResult {
	results := make([]*model.SearchResult, 0)
	for _, p := range catalog.Phases {
		for _, w := range p.Weeks {
			if !MatchesWeek(w, query) {
				continue
			}
			results = append(results, &model.SearchResult{
				PhaseID:   p.ID,
				PhaseName: p.Name,
				WeekID:    w.ID,
				Title:     w.Title,
				Focus:     w.Focus,
			})
		}
	}
	return results
}
