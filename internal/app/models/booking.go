package models

import "clinicport-service/internal/pkg/dto/responses"

// Booking records one reserved slot. Active mirrors the non-cancelled
// statuses so the provider/date/slot uniqueness index can be partial on a
// single boolean field; cancelling flips Active to false and frees the slot.
type Booking struct {
	ID               string `bson:"_id,omitempty"`
	Kind             string `bson:"kind"`
	PatientID        string `bson:"patientId"`
	ProviderID       string `bson:"providerId"`
	Date             string `bson:"date"`
	SlotTime         string `bson:"slotTime"`
	SlotWidthMinutes int    `bson:"slotWidthMinutes"`
	Status           string `bson:"status"`
	Active           bool   `bson:"active"`
	LabTestCode      string `bson:"labTestCode,omitempty"`
	TimeModel        `bson:",inline"`
}

func (b Booking) ConvertIntoResponse() responses.Booking {
	return responses.Booking{
		ID:               b.ID,
		Kind:             b.Kind,
		ProviderID:       b.ProviderID,
		Date:             b.Date,
		SlotTime:         b.SlotTime,
		SlotWidthMinutes: b.SlotWidthMinutes,
		Status:           b.Status,
		LabTestCode:      b.LabTestCode,
	}
}
