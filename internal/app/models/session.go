package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	PatientID string    `json:"patient_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	ExpiresAt time.Time `json:"expires_at"`
}
