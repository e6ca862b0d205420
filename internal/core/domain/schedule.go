package domain

import "fmt"

// Schedule is an hour-of-day window [StartHour, EndHour) in the reference
// time zone. Windows do not wrap past midnight: a schedule with
// StartHour >= EndHour never contains any hour.
type Schedule struct {
	ID        int64
	StartHour int
	EndHour   int
}

// Contains reports whether hour falls inside the window.
func (s Schedule) Contains(hour int) bool {
	return s.StartHour <= hour && hour < s.EndHour
}

func (s Schedule) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.StartHour, s.EndHour)
}
