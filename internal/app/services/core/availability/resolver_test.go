package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustClock(t *testing.T, raw string) Clock {
	t.Helper()
	c, ok := ParseClock(raw)
	assert.True(t, ok, "expected %q to parse", raw)
	return c
}

func rangeOf(t *testing.T, start, end string) TimeRange {
	t.Helper()
	return TimeRange{Start: mustClock(t, start), End: mustClock(t, end)}
}

func mondaySchedule(t *testing.T, ranges ...TimeRange) WeeklySchedule {
	t.Helper()
	return WeeklySchedule{Monday: DayPlan{Enabled: true, Ranges: ranges}}
}

// 2026-03-02 is a Monday.
var testMonday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func displays(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Display)
	}
	return out
}

func TestParseClock(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		c, ok := ParseClock("09:20")
		assert.True(t, ok)
		assert.Equal(t, Clock{H: 9, M: 20}, c)

		c, ok = ParseClock("9:05")
		assert.True(t, ok)
		assert.Equal(t, Clock{H: 9, M: 5}, c)

		c, ok = ParseClock("23:59")
		assert.True(t, ok)
		assert.Equal(t, Clock{H: 23, M: 59}, c)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, raw := range []string{"", "24:00", "12:60", "noon", "12", "12:xx", "-1:00"} {
			_, ok := ParseClock(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
		}
	})
}

func TestParseSlotDisplay(t *testing.T) {
	c, ok := ParseSlotDisplay("09:20 AM")
	assert.True(t, ok)
	assert.Equal(t, Clock{H: 9, M: 20}, c)

	c, ok = ParseSlotDisplay("01:40 PM")
	assert.True(t, ok)
	assert.Equal(t, Clock{H: 13, M: 40}, c)

	_, ok = ParseSlotDisplay("13:40")
	assert.False(t, ok)
}

func TestClockDisplay(t *testing.T) {
	assert.Equal(t, "09:20 AM", Clock{H: 9, M: 20}.Display())
	assert.Equal(t, "12:00 PM", Clock{H: 12, M: 0}.Display())
	assert.Equal(t, "12:40 AM", Clock{H: 0, M: 40}.Display())
	assert.Equal(t, "11:40 PM", Clock{H: 23, M: 40}.Display())
}

func TestSlotsForDate(t *testing.T) {
	t.Run("emits one slot per width within the window", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "09:00"))

		slots := SlotsForDate(testMonday, weekly, nil, 20)

		assert.Equal(t, []string{"08:00 AM", "08:20 AM", "08:40 AM"}, displays(slots))
	})

	t.Run("never emits a slot extending past the window end", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "08:50"))

		slots := SlotsForDate(testMonday, weekly, nil, 20)

		// 08:40 would run until 09:00, past the 08:50 end.
		assert.Equal(t, []string{"08:00 AM", "08:20 AM"}, displays(slots))
	})

	t.Run("window shorter than one width yields nothing", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "08:15"))

		assert.Empty(t, SlotsForDate(testMonday, weekly, nil, 20))
	})

	t.Run("multiple ranges sorted ascending", func(t *testing.T) {
		weekly := mondaySchedule(t,
			rangeOf(t, "13:00", "14:00"),
			rangeOf(t, "08:00", "08:40"),
		)

		slots := SlotsForDate(testMonday, weekly, nil, 20)

		assert.Equal(t, []string{"08:00 AM", "08:20 AM", "01:00 PM", "01:20 PM", "01:40 PM"}, displays(slots))
	})

	t.Run("overlapping ranges deduplicate by start time", func(t *testing.T) {
		weekly := mondaySchedule(t,
			rangeOf(t, "08:00", "09:00"),
			rangeOf(t, "08:00", "08:40"),
		)

		slots := SlotsForDate(testMonday, weekly, nil, 20)

		assert.Equal(t, []string{"08:00 AM", "08:20 AM", "08:40 AM"}, displays(slots))
	})

	t.Run("disabled weekday yields nothing despite ranges", func(t *testing.T) {
		weekly := WeeklySchedule{Monday: DayPlan{Enabled: false, Ranges: []TimeRange{rangeOf(t, "08:00", "12:00")}}}

		assert.Empty(t, SlotsForDate(testMonday, weekly, nil, 20))
	})

	t.Run("inverted range contributes nothing", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "12:00", "08:00"))

		assert.Empty(t, SlotsForDate(testMonday, weekly, nil, 20))
	})

	t.Run("non positive width yields nothing", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "12:00"))

		assert.Empty(t, SlotsForDate(testMonday, weekly, nil, 0))
		assert.Empty(t, SlotsForDate(testMonday, weekly, nil, -5))
	})

	t.Run("override replaces the weekly plan entirely", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "12:00"))
		overrides := map[string]DateOverride{
			DateKey(testMonday): {Ranges: []TimeRange{rangeOf(t, "14:00", "15:00")}},
		}

		slots := SlotsForDate(testMonday, weekly, overrides, 30)

		assert.Equal(t, []string{"02:00 PM", "02:30 PM"}, displays(slots))
	})

	t.Run("empty override closes the date", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "12:00"))
		overrides := map[string]DateOverride{
			DateKey(testMonday): {},
		}

		assert.Empty(t, SlotsForDate(testMonday, weekly, overrides, 20))
	})

	t.Run("override on another date leaves the weekly plan intact", func(t *testing.T) {
		weekly := mondaySchedule(t, rangeOf(t, "08:00", "08:40"))
		overrides := map[string]DateOverride{
			DateKey(testMonday.AddDate(0, 0, 1)): {},
		}

		slots := SlotsForDate(testMonday, weekly, overrides, 20)

		assert.Equal(t, []string{"08:00 AM", "08:20 AM"}, displays(slots))
	})
}

func TestIsDateAvailable(t *testing.T) {
	weekly := mondaySchedule(t, rangeOf(t, "08:00", "09:00"))

	assert.True(t, IsDateAvailable(testMonday, weekly, nil, 20))

	tuesday := testMonday.AddDate(0, 0, 1)
	assert.False(t, IsDateAvailable(tuesday, weekly, nil, 20))
}

func TestIsDateFullyBooked(t *testing.T) {
	weekly := mondaySchedule(t, rangeOf(t, "08:00", "09:00"))

	t.Run("all slots taken", func(t *testing.T) {
		booked := map[string]struct{}{
			"08:00 AM": {},
			"08:20 AM": {},
			"08:40 AM": {},
		}
		assert.True(t, IsDateFullyBooked(testMonday, weekly, nil, 20, booked))
	})

	t.Run("one slot left", func(t *testing.T) {
		booked := map[string]struct{}{
			"08:00 AM": {},
			"08:20 AM": {},
		}
		assert.False(t, IsDateFullyBooked(testMonday, weekly, nil, 20, booked))
	})

	t.Run("unavailable date is not fully booked", func(t *testing.T) {
		tuesday := testMonday.AddDate(0, 0, 1)
		assert.False(t, IsDateFullyBooked(tuesday, weekly, nil, 20, nil))
	})
}

func TestIsSlotBookable(t *testing.T) {
	weekly := mondaySchedule(t, rangeOf(t, "08:00", "09:00"))

	t.Run("offered and free", func(t *testing.T) {
		assert.True(t, IsSlotBookable(testMonday, weekly, nil, 20, nil, "08:20 AM"))
	})

	t.Run("offered but taken", func(t *testing.T) {
		booked := map[string]struct{}{"08:20 AM": {}}
		assert.False(t, IsSlotBookable(testMonday, weekly, nil, 20, booked, "08:20 AM"))
	})

	t.Run("never offered", func(t *testing.T) {
		assert.False(t, IsSlotBookable(testMonday, weekly, nil, 20, nil, "10:00 AM"))
		assert.False(t, IsSlotBookable(testMonday, weekly, nil, 20, nil, "08:10 AM"))
	})
}

func TestStateForDate(t *testing.T) {
	weekly := mondaySchedule(t, rangeOf(t, "08:00", "08:40"))

	t.Run("open when a slot remains", func(t *testing.T) {
		booked := map[string]struct{}{"08:00 AM": {}}
		assert.Equal(t, DayStateOpen, StateForDate(testMonday, weekly, nil, 20, booked))
	})

	t.Run("full when every slot is taken", func(t *testing.T) {
		booked := map[string]struct{}{"08:00 AM": {}, "08:20 AM": {}}
		assert.Equal(t, DayStateFull, StateForDate(testMonday, weekly, nil, 20, booked))
	})

	t.Run("unavailable stays distinct from full", func(t *testing.T) {
		tuesday := testMonday.AddDate(0, 0, 1)
		assert.Equal(t, DayStateUnavailable, StateForDate(tuesday, weekly, nil, 20, nil))

		overrides := map[string]DateOverride{DateKey(testMonday): {}}
		assert.Equal(t, DayStateUnavailable, StateForDate(testMonday, weekly, overrides, 20, nil))
	})
}

func TestEstimatedServiceTime(t *testing.T) {
	nineAM := Clock{H: 9, M: 0}.MinuteOfDay()

	t.Run("no earlier bookings means base time", func(t *testing.T) {
		got := EstimatedServiceTime(nineAM, nil)
		assert.Equal(t, EstimatedServiceBaseClock, got)
	})

	t.Run("each earlier booking shifts by one step", func(t *testing.T) {
		booked := []int{
			Clock{H: 8, M: 0}.MinuteOfDay(),
			Clock{H: 8, M: 20}.MinuteOfDay(),
			Clock{H: 8, M: 40}.MinuteOfDay(),
		}
		got := EstimatedServiceTime(nineAM, booked)
		assert.Equal(t, Clock{H: 9, M: 30}, got)
	})

	t.Run("later bookings do not count", func(t *testing.T) {
		booked := []int{
			Clock{H: 8, M: 0}.MinuteOfDay(),
			Clock{H: 10, M: 0}.MinuteOfDay(),
		}
		got := EstimatedServiceTime(nineAM, booked)
		assert.Equal(t, Clock{H: 8, M: 30}, got)
	})

	t.Run("own slot minute does not count itself", func(t *testing.T) {
		booked := []int{nineAM}
		got := EstimatedServiceTime(nineAM, booked)
		assert.Equal(t, EstimatedServiceBaseClock, got)
	})
}
