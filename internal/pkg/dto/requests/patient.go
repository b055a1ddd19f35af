package requests

type UpdateProfile struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Phone       string `json:"phone" validate:"omitempty,min=8,max=20"`
}
