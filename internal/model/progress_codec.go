package model

import (
	"strconv"

	"github.com/goccy/go-json"
)

// weekRecord is the persisted shape of a single week:
//
//	{"days": {"0": true, "3": false}}
type weekRecord struct {
	Days map[string]bool `json:"days"`
}

// MarshalJSON writes the persisted layout
// {"<phaseId>": {"<weekId>": {"days": {"<dayIndex>": bool}}}}.
func (p Progress) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]weekRecord)
	for key, days := range p {
		weeks, ok := out[key.PhaseID]
		if !ok {
			weeks = make(map[string]weekRecord)
			out[key.PhaseID] = weeks
		}
		rec := weekRecord{Days: make(map[string]bool, len(days))}
		for i, v := range days {
			rec.Days[strconv.Itoa(i)] = v
		}
		weeks[strconv.Itoa(key.WeekID)] = rec
	}
	return json.Marshal(out)
}

func (p *Progress) UnmarshalJSON(b []byte) error {
	decoded, err := DecodeProgress(b)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// DecodeProgress parses the persisted layout. Week records are accepted both
// wrapped in a "days" object and as a flat index map. Week or day keys that are
// not integers, and null entries, are skipped.
func DecodeProgress(b []byte) (Progress, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	p := NewProgress()
	for phaseID, weeks := range raw {
		for weekKey, body := range weeks {
			weekID, err := strconv.Atoi(weekKey)
			if err != nil {
				continue
			}
			days, err := decodeDays(body)
			if err != nil {
				return nil, err
			}
			if days == nil {
				continue
			}
			p[WeekKey{PhaseID: phaseID, WeekID: weekID}] = days
		}
	}
	return p, nil
}

func decodeDays(body json.RawMessage) (DaySet, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, nil
	}
	if inner, ok := fields["days"]; ok {
		fields = nil
		if err := json.Unmarshal(inner, &fields); err != nil {
			return nil, err
		}
	}

	days := make(DaySet, len(fields))
	for k, v := range fields {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		var done bool
		if err := json.Unmarshal(v, &done); err != nil {
			return nil, err
		}
		days[i] = done
	}
	return days, nil
}
