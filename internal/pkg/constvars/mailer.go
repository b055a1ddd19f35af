package constvars

const (
	EmailWelcomeSubject            = "[CLINICPORT] Welcome to ClinicPort"
	EmailForgotPasswordSubject     = "[CLINICPORT] Password Reset Link"
	EmailBookingConfirmedSubject   = "[CLINICPORT] Your Booking Is Confirmed"
	EmailBookingCancelledSubject   = "[CLINICPORT] Your Booking Was Cancelled"
	EmailSendBasicEmailFormat      = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLFormat            = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailWelcomeHTMLFormat         = "<html><body>Hello <strong>%s</strong>,<br><br>Welcome to ClinicPort. Your account is ready; you can now book consultations and laboratory exams online.</body></html>"
	EmailForgotPasswordHTMLFormat  = "<html><body>Hello <strong>%s</strong>,<br><br>Use the link below to reset your password:<br><br>%s<br><br>The link is valid until %s and can be used once. If you did not request this, please ignore this email.</body></html>"
	EmailBookingConfirmHTMLFormat  = "<html><body>Hello <strong>%s</strong>,<br><br>Your %s with <strong>%s</strong> on %s at %s is confirmed.</body></html>"
	EmailBookingCancelHTMLFormat   = "<html><body>Hello <strong>%s</strong>,<br><br>Your %s with <strong>%s</strong> on %s at %s has been cancelled.</body></html>"
)
