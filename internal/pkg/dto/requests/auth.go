package requests

type RegisterPatient struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required"`
}

type LoginPatient struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token                   string `json:"token" validate:"required"`
	NewPassword             string `json:"new_password" validate:"password"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required"`
	HashedNewPassword       string `json:"-"`
}
