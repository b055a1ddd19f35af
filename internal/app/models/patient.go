package models

import "clinicport-service/internal/pkg/dto/responses"

type Patient struct {
	ID                string `bson:"_id,omitempty"`
	FullName          string `bson:"fullName"`
	Email             string `bson:"email"`
	Password          string `bson:"password"`
	Phone             string `bson:"phone,omitempty"`
	ProfilePictureURL string `bson:"profilePictureUrl,omitempty"`
	TimeModel         `bson:",inline"`
}

func (p Patient) ConvertIntoResponse() responses.PatientProfile {
	return responses.PatientProfile{
		ID:                p.ID,
		FullName:          p.FullName,
		Email:             p.Email,
		Phone:             p.Phone,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}
