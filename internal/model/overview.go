package model

import "math"

// Completion is a (completed, total) day count pair.
type Completion struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Percent returns round(100*completed/total), or 0 for an empty total.
func (c Completion) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(c.Completed) / float64(c.Total)))
}

func (c Completion) Add(o Completion) Completion {
	return Completion{
		Completed: c.Completed + o.Completed,
		Total:     c.Total + o.Total,
	}
}

type Overview struct {
	Completion
	Percent int              `json:"percent"`
	Query   string           `json:"query,omitempty"`
	Phases  []*PhaseOverview `json:"phases"`
}

type PhaseOverview struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Completion
	Percent int `json:"percent"`
	// Weeks lists only the weeks that match the query; the completion figures
	// above always cover the whole phase.
	Weeks []*WeekOverview `json:"weeks"`
}

type WeekOverview struct {
	PhaseID string `json:"phaseId"`
	ID      int    `json:"week"`
	Title   string `json:"title"`
	Focus   string `json:"focus"`
	// FullyComplete is true when every day of the week is checked.
	FullyComplete bool `json:"fullyComplete"`
	Completion
	Percent int            `json:"percent"`
	Days    []*DayOverview `json:"days"`
}

type DayOverview struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type SearchResult struct {
	PhaseID   string `json:"phaseId"`
	PhaseName string `json:"phaseName"`
	WeekID    int    `json:"week"`
	Title     string `json:"title"`
	Focus     string `json:"focus"`
}
