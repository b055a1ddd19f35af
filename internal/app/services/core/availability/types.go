package availability

import "time"

// Clock holds a local wall time (hour and minute).
type Clock struct {
	H int `json:"h" bson:"h"`
	M int `json:"m" bson:"m"`
}

// MinuteOfDay returns the clock as minutes since midnight.
func (c Clock) MinuteOfDay() int {
	return c.H*60 + c.M
}

// Display renders the clock in the 12-hour form the booking UI shows,
// e.g. "09:20 AM".
func (c Clock) Display() string {
	return time.Date(0, time.January, 1, c.H, c.M, 0, 0, time.UTC).Format("03:04 PM")
}

// TimeRange defines an inclusive start and exclusive end wall-clock window.
type TimeRange struct {
	Start Clock `json:"start" bson:"start"`
	End   Clock `json:"end" bson:"end"`
}

// Valid reports whether the range can contribute slots. A range with
// start >= end contributes nothing rather than failing.
func (r TimeRange) Valid() bool {
	return r.Start.MinuteOfDay() < r.End.MinuteOfDay()
}

// DayPlan lists zero or more windows for a weekday. A disabled day
// contributes no slots regardless of its ranges.
type DayPlan struct {
	Enabled bool        `json:"enabled" bson:"enabled"`
	Ranges  []TimeRange `json:"ranges" bson:"ranges"`
}

// WeeklySchedule is a provider's recurring default availability.
type WeeklySchedule struct {
	Monday    DayPlan `json:"monday" bson:"monday"`
	Tuesday   DayPlan `json:"tuesday" bson:"tuesday"`
	Wednesday DayPlan `json:"wednesday" bson:"wednesday"`
	Thursday  DayPlan `json:"thursday" bson:"thursday"`
	Friday    DayPlan `json:"friday" bson:"friday"`
	Saturday  DayPlan `json:"saturday" bson:"saturday"`
	Sunday    DayPlan `json:"sunday" bson:"sunday"`
}

// ForWeekday returns the plan for the given weekday.
func (ws WeeklySchedule) ForWeekday(wd time.Weekday) DayPlan {
	switch wd {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	case time.Sunday:
		return ws.Sunday
	default:
		return DayPlan{}
	}
}

// SetWeekday replaces the plan for the given weekday.
func (ws *WeeklySchedule) SetWeekday(wd time.Weekday, plan DayPlan) {
	switch wd {
	case time.Monday:
		ws.Monday = plan
	case time.Tuesday:
		ws.Tuesday = plan
	case time.Wednesday:
		ws.Wednesday = plan
	case time.Thursday:
		ws.Thursday = plan
	case time.Friday:
		ws.Friday = plan
	case time.Saturday:
		ws.Saturday = plan
	case time.Sunday:
		ws.Sunday = plan
	}
}

// DateOverride fully replaces the weekly schedule's contribution for one
// calendar date. An override with zero ranges means "explicitly closed",
// which is distinct from no override being present at all.
type DateOverride struct {
	Ranges []TimeRange `json:"ranges" bson:"ranges"`
}

// Slot is a discrete bookable unit of provider time. Slots are derived,
// never stored; Display is the identity used by booking records.
type Slot struct {
	Display     string `json:"display"`
	MinuteOfDay int    `json:"minute_of_day"`
}

// DayState classifies a calendar date for rendering. Unavailable (zero
// configured slots) and Full (every configured slot reserved) are distinct
// states and must not be conflated.
type DayState string

const (
	DayStateUnavailable DayState = "unavailable"
	DayStateOpen        DayState = "open"
	DayStateFull        DayState = "full"
)

// dateKeyLayout matches the ISO date keys used for override maps and
// booking records.
const dateKeyLayout = "2006-01-02"

// DateKey returns the override-map key for a calendar date.
func DateKey(date time.Time) string {
	return date.Format(dateKeyLayout)
}
