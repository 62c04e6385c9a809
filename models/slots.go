package models

// Slot is a bookable candidate interval within a coach's day.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SlotGrid describes the fixed candidate grid for a coach's bookable
// day. Hours are on a 24h clock; the grid covers [DayStartHour,
// DayEndHour) in SlotMinutes steps.
type SlotGrid struct {
	DayStartHour int
	DayEndHour   int
	SlotMinutes  int
}

// Count returns the number of candidate slots the grid produces.
func (g SlotGrid) Count() int {
	if g.SlotMinutes <= 0 {
		return 0
	}
	return ((g.DayEndHour - g.DayStartHour) * 60) / g.SlotMinutes
}
