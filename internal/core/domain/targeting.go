package domain

import "slices"

// Radius bounds in kilometres. A new draft starts at DefaultRadiusKm.
const (
	DefaultRadiusKm = 5
	MinRadiusKm     = 1
	MaxRadiusKm     = 30
)

// TimeWindow is a coarse part of the day an audience can be restricted to.
type TimeWindow string

const (
	TimeWindowEarlyMorning TimeWindow = "early_morning" // 00-06
	TimeWindowMorning      TimeWindow = "morning"       // 06-12
	TimeWindowAfternoon    TimeWindow = "afternoon"     // 12-18
	TimeWindowEvening      TimeWindow = "evening"       // 18-24
)

// TimeWindows lists every known window in canonical order.
var TimeWindows = []TimeWindow{
	TimeWindowEarlyMorning,
	TimeWindowMorning,
	TimeWindowAfternoon,
	TimeWindowEvening,
}

// Valid reports whether w is a known window.
func (w TimeWindow) Valid() bool {
	return slices.Contains(TimeWindows, w)
}

// Audience describes who should see a campaign: everyone within RadiusKm of
// the provider, optionally restricted to some parts of the day, minus the
// excluded areas.
type Audience struct {
	RadiusKm     int          `json:"radius_km" validate:"min=1,max=30"`
	TimeWindows  []TimeWindow `json:"time_windows" validate:"dive,time_window"`
	ExcludeAreas []string     `json:"exclude_areas"`
}

// AllHours reports whether the audience is not restricted by time of day.
func (a Audience) AllHours() bool {
	return len(a.TimeWindows) == 0
}

// Clone returns a deep copy of a.
func (a Audience) Clone() Audience {
	a.TimeWindows = slices.Clone(a.TimeWindows)
	a.ExcludeAreas = slices.Clone(a.ExcludeAreas)
	return a
}

// NormalizeTimeWindows turns ws into a set: duplicates are dropped and known
// windows are put in canonical order. Unknown tokens are kept at the end so
// validation can report them.
func NormalizeTimeWindows(ws []TimeWindow) []TimeWindow {
	if len(ws) == 0 {
		return nil
	}
	out := make([]TimeWindow, 0, len(ws))
	for _, known := range TimeWindows {
		if slices.Contains(ws, known) {
			out = append(out, known)
		}
	}
	for _, w := range ws {
		if !w.Valid() && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}
