package model

// Catalog is the curriculum: an ordered list of phases, each with ordered weeks
// and ordered day labels. It is read-only once loaded.
type Catalog struct {
	Phases []*Phase `json:"phases" validate:"required,dive"`
}

type Phase struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Weeks []*Week `json:"weeks" validate:"required,dive"`
}

type Week struct {
	ID    int      `json:"week" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Focus string   `json:"focus"`
	Days  []string `json:"days"`
}

// Phase returns the phase with the given id, or nil.
func (c *Catalog) Phase(id string) *Phase {
	for _, p := range c.Phases {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Week returns the phase and week addressed by (phaseID, weekID). Either result
// is nil when the address does not exist in the catalog.
func (c *Catalog) Week(phaseID string, weekID int) (*Phase, *Week) {
	p := c.Phase(phaseID)
	if p == nil {
		return nil, nil
	}
	return p, p.Week(weekID)
}

func (p *Phase) Week(id int) *Week {
	for _, w := range p.Weeks {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (p *Phase) DayCount() int {
	n := 0
	for _, w := range p.Weeks {
		n += len(w.Days)
	}
	return n
}
