package requests

type CreateBooking struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
	Kind        string `json:"kind" validate:"required,oneof=consultation lab"`
	ProviderID  string `json:"provider_id" validate:"required"`
	Date        string `json:"date" validate:"required,date"`
	SlotTime    string `json:"slot_time" validate:"required,slot_time"`
	SlotWidth   int    `json:"slot_width" validate:"omitempty,oneof=20 30 60"`
	LabTestCode string `json:"lab_test_code,omitempty"`
}

type ListBookings struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
}

type CancelBooking struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
	BookingID   string `json:"-" validate:"required"`
}
