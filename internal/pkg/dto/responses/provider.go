package responses

type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email,omitempty"`
}

type Slot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

type SlotList struct {
	ProviderID   string `json:"provider_id"`
	Date         string `json:"date"`
	WidthMinutes int    `json:"width_minutes"`
	Slots        []Slot `json:"slots"`
}

type CalendarDay struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type Calendar struct {
	ProviderID string        `json:"provider_id"`
	Month      string        `json:"month"`
	Days       []CalendarDay `json:"days"`
}
