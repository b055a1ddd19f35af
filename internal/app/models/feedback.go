package models

import "clinicport-service/internal/pkg/dto/responses"

type Feedback struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Subject   string `bson:"subject"`
	Message   string `bson:"message"`
	Rating    int    `bson:"rating"`
	TimeModel `bson:",inline"`
}

func (f Feedback) ConvertIntoResponse() responses.Feedback {
	return responses.Feedback{
		ID:        f.ID,
		Subject:   f.Subject,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}
