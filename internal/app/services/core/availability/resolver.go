package availability

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// EstimatedServiceBaseClock is when the clinic starts working through its
// queue for the day.
var EstimatedServiceBaseClock = Clock{H: 8, M: 0}

// EstimatedServiceStepMinutes is the assumed per-visit handling time used by
// the estimated service time heuristic.
const EstimatedServiceStepMinutes = 30

// ParseClock parses a 24-hour "HH:MM" string. Single-digit hours are
// accepted ("9:00" and "09:00" both parse).
func ParseClock(raw string) (Clock, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return Clock{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

// ParseSlotDisplay parses a 12-hour display value such as "09:20 AM" back
// into a Clock.
func ParseSlotDisplay(raw string) (Clock, bool) {
	t, err := time.Parse("03:04 PM", strings.TrimSpace(raw))
	if err != nil {
		return Clock{}, false
	}
	return Clock{H: t.Hour(), M: t.Minute()}, true
}

// RangesForDate resolves the effective availability windows for one calendar
// date. A date-specific override, when present, fully replaces the weekly
// plan for that date; an override with zero ranges closes the date.
func RangesForDate(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride) []TimeRange {
	if override, ok := overrides[DateKey(date)]; ok {
		return override.Ranges
	}
	plan := weekly.ForWeekday(date.Weekday())
	if !plan.Enabled {
		return nil
	}
	return plan.Ranges
}

// SlotsForDate expands the effective windows for a date into bookable slots
// of widthMinutes each. Slots start at each window's start and repeat every
// widthMinutes; a slot that would extend past the window's end is never
// emitted. Overlapping windows are deduplicated by start time and the result
// is in ascending order.
func SlotsForDate(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int) []Slot {
	return slotsFromRanges(RangesForDate(date, weekly, overrides), widthMinutes)
}

func slotsFromRanges(ranges []TimeRange, widthMinutes int) []Slot {
	if widthMinutes <= 0 {
		return nil
	}
	seen := make(map[int]struct{})
	var minutes []int
	for _, r := range ranges {
		if !r.Valid() {
			continue
		}
		endMin := r.End.MinuteOfDay()
		for m := r.Start.MinuteOfDay(); m+widthMinutes <= endMin; m += widthMinutes {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			minutes = append(minutes, m)
		}
	}
	sort.Ints(minutes)

	slots := make([]Slot, 0, len(minutes))
	for _, m := range minutes {
		c := Clock{H: m / 60, M: m % 60}
		slots = append(slots, Slot{Display: c.Display(), MinuteOfDay: m})
	}
	return slots
}

// IsDateAvailable reports whether a date has at least one configured slot,
// regardless of bookings.
func IsDateAvailable(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int) bool {
	return len(SlotsForDate(date, weekly, overrides, widthMinutes)) > 0
}

// IsDateFullyBooked reports whether a date has configured slots and every
// one of them appears in the booked set. A date with no configured slots is
// not fully booked, it is unavailable.
func IsDateFullyBooked(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int, booked map[string]struct{}) bool {
	slots := SlotsForDate(date, weekly, overrides, widthMinutes)
	if len(slots) == 0 {
		return false
	}
	for _, s := range slots {
		if _, ok := booked[s.Display]; !ok {
			return false
		}
	}
	return true
}

// IsSlotBookable reports whether slotDisplay is one of the date's configured
// slots and is not already in the booked set. This is a pre-flight check
// only; the booking store's uniqueness constraint is what actually prevents
// a double booking under concurrency.
func IsSlotBookable(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int, booked map[string]struct{}, slotDisplay string) bool {
	for _, s := range SlotsForDate(date, weekly, overrides, widthMinutes) {
		if s.Display == slotDisplay {
			_, taken := booked[slotDisplay]
			return !taken
		}
	}
	return false
}

// IsSlotOffered reports whether slotDisplay is one of the date's configured
// slots, ignoring bookings.
func IsSlotOffered(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int, slotDisplay string) bool {
	for _, s := range SlotsForDate(date, weekly, overrides, widthMinutes) {
		if s.Display == slotDisplay {
			return true
		}
	}
	return false
}

// StateForDate classifies a date as unavailable, open or full.
func StateForDate(date time.Time, weekly WeeklySchedule, overrides map[string]DateOverride, widthMinutes int, booked map[string]struct{}) DayState {
	slots := SlotsForDate(date, weekly, overrides, widthMinutes)
	if len(slots) == 0 {
		return DayStateUnavailable
	}
	for _, s := range slots {
		if _, ok := booked[s.Display]; !ok {
			return DayStateOpen
		}
	}
	return DayStateFull
}

// EstimatedServiceTime estimates when a patient will actually be seen: the
// day's base clock advanced by one step per booked slot that precedes the
// patient's own slot. slotMinute is the patient's slot as minutes since
// midnight, bookedMinutes the same for every active booking on the date.
func EstimatedServiceTime(slotMinute int, bookedMinutes []int) Clock {
	ahead := 0
	for _, m := range bookedMinutes {
		if m < slotMinute {
			ahead++
		}
	}
	total := EstimatedServiceBaseClock.MinuteOfDay() + ahead*EstimatedServiceStepMinutes
	return Clock{H: (total / 60) % 24, M: total % 60}
}
