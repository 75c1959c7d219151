package util

import (
	"github.com/samber/lo"

	"exusiai.dev/roadmap-tracker/internal/model"
)

// IsWeekFullyComplete reports whether every day of the week is checked.
// A week without days is never fully complete.
func IsWeekFullyComplete(week *model.Week, days model.DaySet) bool {
	if len(week.Days) == 0 {
		return false
	}
	for i := range week.Days {
		if !days[i] {
			return false
		}
	}
	return true
}

// WeekCompletion counts the checked days within [0, len(week.Days)).
func WeekCompletion(week *model.Week, days model.DaySet) model.Completion {
	completed := 0
	for i := range week.Days {
		if days[i] {
			completed++
		}
	}
	return model.Completion{Completed: completed, Total: len(week.Days)}
}

func PhaseCompletion(phase *model.Phase, progress model.Progress) model.Completion {
	return lo.Reduce(phase.Weeks, func(acc model.Completion, w *model.Week, _ int) model.Completion {
		return acc.Add(WeekCompletion(w, progress.Days(phase.ID, w.ID)))
	}, model.Completion{})
}

func GlobalCompletion(catalog *model.Catalog, progress model.Progress) model.Completion {
	return lo.Reduce(catalog.Phases, func(acc model.Completion, p *model.Phase, _ int) model.Completion {
		return acc.Add(PhaseCompletion(p, progress))
	}, model.Completion{})
}

// BuildWeekOverview renders a single week against the progress store.
func BuildWeekOverview(phaseID string, week *model.Week, progress model.Progress) *model.WeekOverview {
	days := progress.Days(phaseID, week.ID)
	completion := WeekCompletion(week, days)
	return &model.WeekOverview{
		PhaseID:       phaseID,
		ID:            week.ID,
		Title:         week.Title,
		Focus:         week.Focus,
		FullyComplete: IsWeekFullyComplete(week, days),
		Completion:    completion,
		Percent:       completion.Percent(),
		Days: lo.Map(week.Days, func(label string, i int) *model.DayOverview {
			return &model.DayOverview{Index: i, Label: label, Completed: days[i]}
		}),
	}
}

// BuildPhaseOverview renders a phase; only weeks matching query are listed but
// the completion covers all of them.
func BuildPhaseOverview(phase *model.Phase, progress model.Progress, query string) *model.PhaseOverview {
	completion := PhaseCompletion(phase, progress)
	visible := lo.Filter(phase.Weeks, func(w *model.Week, _ int) bool {
		return MatchesWeek(w, query)
	})
	return &model.PhaseOverview{
		ID:         phase.ID,
		Name:       phase.Name,
		Completion: completion,
		Percent:    completion.Percent(),
		Weeks: lo.Map(visible, func(w *model.Week, _ int) *model.WeekOverview {
			return BuildWeekOverview(phase.ID, w, progress)
		}),
	}
}

func BuildOverview(catalog *model.Catalog, progress model.Progress, query string) *model.Overview {
	completion := GlobalCompletion(catalog, progress)
	return &model.Overview{
		Completion: completion,
		Percent:    completion.Percent(),
		Query:      query,
		Phases: lo.Map(catalog.Phases, func(p *model.Phase, _ int) *model.PhaseOverview {
			return BuildPhaseOverview(p, progress, query)
		}),
	}
}
