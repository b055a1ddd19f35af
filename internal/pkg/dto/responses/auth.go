package responses

type Register struct {
	PatientID string `json:"patient_id"`
}

type Login struct {
	Token string `json:"token"`
}
