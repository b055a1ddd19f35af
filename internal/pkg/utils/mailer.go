package utils

import (
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"encoding/base64"
	"fmt"
)

func BuildWelcomeEmailPayload(fromEmail, toEmail, patientFullName string) *requests.EmailPayload {
	htmlCode := fmt.Sprintf(constvars.EmailWelcomeHTMLFormat, patientFullName)
	return buildEncodedPayload(constvars.EmailWelcomeSubject, fromEmail, toEmail, htmlCode)
}

func BuildForgotPasswordEmailPayload(fromEmail, toEmail, resetLink, patientFullName, expiryTime string) *requests.EmailPayload {
	htmlCode := fmt.Sprintf(constvars.EmailForgotPasswordHTMLFormat, patientFullName, resetLink, expiryTime)
	return buildEncodedPayload(constvars.EmailForgotPasswordSubject, fromEmail, toEmail, htmlCode)
}

func BuildBookingConfirmedEmailPayload(fromEmail, toEmail, patientFullName, bookingKind, providerName, date, slotTime string) *requests.EmailPayload {
	htmlCode := fmt.Sprintf(constvars.EmailBookingConfirmHTMLFormat, patientFullName, bookingKind, providerName, date, slotTime)
	return buildEncodedPayload(constvars.EmailBookingConfirmedSubject, fromEmail, toEmail, htmlCode)
}

func BuildBookingCancelledEmailPayload(fromEmail, toEmail, patientFullName, bookingKind, providerName, date, slotTime string) *requests.EmailPayload {
	htmlCode := fmt.Sprintf(constvars.EmailBookingCancelHTMLFormat, patientFullName, bookingKind, providerName, date, slotTime)
	return buildEncodedPayload(constvars.EmailBookingCancelledSubject, fromEmail, toEmail, htmlCode)
}

func buildEncodedPayload(subject, fromEmail, toEmail, htmlCode string) *requests.EmailPayload {
	encoded := base64.StdEncoding.EncodeToString([]byte(htmlCode))
	return &requests.EmailPayload{
		Subject:  subject,
		From:     fromEmail,
		To:       []string{toEmail},
		Cc:       []string{},
		Bcc:      []string{},
		HTMLCode: encoded,
		Encoded:  true,
	}
}
