package responses

type Booking struct {
	ID                   string `json:"id"`
	Kind                 string `json:"kind"`
	ProviderID           string `json:"provider_id"`
	ProviderName         string `json:"provider_name,omitempty"`
	Date                 string `json:"date"`
	SlotTime             string `json:"slot_time"`
	SlotWidthMinutes     int    `json:"slot_width_minutes"`
	Status               string `json:"status"`
	LabTestCode          string `json:"lab_test_code,omitempty"`
	EstimatedServiceTime string `json:"estimated_service_time,omitempty"`
}
