package model

// WeekKey addresses a week's completion record within the progress store.
type WeekKey struct {
	PhaseID string
	WeekID  int
}

// DaySet records completion per zero-based day index. A missing index and a
// false value both mean incomplete. Indices outside the catalog's week are kept
// as-is and ignored by aggregation.
type DaySet map[int]bool

// Progress is the user's completion state. Values are treated as immutable:
// ToggleDay and SetWeek return a new Progress and leave the receiver
// untouched. Weeks that a mutation does not target keep sharing their DaySet
// with the previous value.
type Progress map[WeekKey]DaySet

func NewProgress() Progress {
	return Progress{}
}

// Days returns the recorded day set for a week. The result may be nil and must
// not be modified.
func (p Progress) Days(phaseID string, weekID int) DaySet {
	return p[WeekKey{PhaseID: phaseID, WeekID: weekID}]
}

// ToggleDay flips a single day: absent or false becomes true, true becomes
// false. The week entry is created on demand.
func (p Progress) ToggleDay(phaseID string, weekID, day int) Progress {
	key := WeekKey{PhaseID: phaseID, WeekID: weekID}
	prev := p[key]

	days := make(DaySet, len(prev)+1)
	for i, v := range prev {
		days[i] = v
	}
	days[day] = !prev[day]

	next := p.shallowCopy()
	next[key] = days
	return next
}

// SetWeek replaces the week's day set with {0..dayCount-1: value}. Stray
// indices previously recorded for the week are dropped.
func (p Progress) SetWeek(phaseID string, weekID, dayCount int, value bool) Progress {
	days := make(DaySet, dayCount)
	for i := 0; i < dayCount; i++ {
		days[i] = value
	}

	next := p.shallowCopy()
	next[WeekKey{PhaseID: phaseID, WeekID: weekID}] = days
	return next
}

// Clone returns a deep copy.
func (p Progress) Clone() Progress {
	next := make(Progress, len(p))
	for k, days := range p {
		cp := make(DaySet, len(days))
		for i, v := range days {
			cp[i] = v
		}
		next[k] = cp
	}
	return next
}

func (p Progress) shallowCopy() Progress {
	next := make(Progress, len(p)+1)
	for k, v := range p {
		next[k] = v
	}
	return next
}
