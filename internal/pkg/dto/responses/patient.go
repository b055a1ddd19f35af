package responses

type PatientProfile struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}
