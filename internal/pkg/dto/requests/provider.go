package requests

// TimeRangeInput carries a single availability window in 24-hour "HH:MM" form.
type TimeRangeInput struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type DayPlanInput struct {
	Enabled    bool             `json:"enabled"`
	TimeRanges []TimeRangeInput `json:"time_ranges" validate:"dive"`
}

// PutWeeklySchedule replaces a provider's recurring weekly availability.
// Days are keyed by lowercase English weekday names.
type PutWeeklySchedule struct {
	ProviderID string                  `json:"-"`
	Days       map[string]DayPlanInput `json:"days" validate:"required"`
}

// PutDateOverride replaces the weekly schedule for one calendar date. An
// empty time range list marks the date explicitly unavailable.
type PutDateOverride struct {
	ProviderID string           `json:"-"`
	Date       string           `json:"date" validate:"required,date"`
	TimeRanges []TimeRangeInput `json:"time_ranges" validate:"dive"`
}

type DeleteDateOverride struct {
	ProviderID string `json:"-"`
	Date       string `json:"date" validate:"required,date"`
}

type ListSlots struct {
	ProviderID   string
	Date         string `validate:"required,date"`
	WidthMinutes int    `validate:"oneof=20 30 60"`
}

type GetCalendar struct {
	ProviderID   string
	Month        string `validate:"required"`
	WidthMinutes int    `validate:"oneof=20 30 60"`
}
