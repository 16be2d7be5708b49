package domain

// DaySchedule maps a slot label to the bookings occupying it, in arrival order
type DaySchedule map[string][]Booking

// Schedule maps an ISO date (YYYY-MM-DD) to the bookings of that day.
// Published schedules are never mutated in place: writers build a new
// Schedule that shares the untouched branches and swap it in.
type Schedule map[string]DaySchedule

// Clone returns a deep copy of the schedule
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for date, day := range s {
		out[date] = day.Clone()
	}
	return out
}

// Clone returns a deep copy of the day
func (d DaySchedule) Clone() DaySchedule {
	out := make(DaySchedule, len(d))
	for label, bookings := range d {
		out[label] = append([]Booking(nil), bookings...)
	}
	return out
}

// MaxBookingID returns the largest booking id in the schedule (0 if empty)
func (s Schedule) MaxBookingID() int64 {
	var maxID int64
	for _, day := range s {
		for _, bookings := range day {
			for _, b := range bookings {
				if b.ID > maxID {
					maxID = b.ID
				}
			}
		}
	}
	return maxID
}
