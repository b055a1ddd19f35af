package models

import (
	"clinicport-service/internal/app/services/core/availability"
	"clinicport-service/internal/pkg/dto/responses"
)

type Provider struct {
	ID             string                                 `bson:"_id,omitempty"`
	Name           string                                 `bson:"name"`
	Specialty      string                                 `bson:"specialty"`
	Email          string                                 `bson:"email,omitempty"`
	WeeklySchedule availability.WeeklySchedule            `bson:"weeklySchedule"`
	DateOverrides  map[string]availability.DateOverride   `bson:"dateOverrides,omitempty"`
	TimeModel      `bson:",inline"`
}

func (p Provider) ConvertIntoResponse() responses.Provider {
	return responses.Provider{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		Email:     p.Email,
	}
}
