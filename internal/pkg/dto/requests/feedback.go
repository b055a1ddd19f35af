package requests

type CreateFeedback struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
	Subject     string `json:"subject" validate:"required,min=3,max=120"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
}

type ListFeedback struct {
	SessionData string `json:"-"`
	PatientID   string `json:"-"`
}
