package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess       = "patient registered successfully"
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ForgotPasswordSuccess = "reset password link already sent to your email"
	ResetPasswordSuccess  = "password already reset successfully"

	// Patient messages
	ProfileGetSuccess           = "get profile successfully"
	ProfileUpdateSuccess        = "profile updated successfully"
	ProfilePictureUploadSuccess = "profile picture uploaded successfully"

	// Provider and availability messages
	ProviderListSuccess  = "get providers successfully"
	ProviderGetSuccess   = "get provider successfully"
	SlotListSuccess      = "get available slots successfully"
	CalendarGetSuccess   = "get availability calendar successfully"
	ScheduleSetSuccess   = "weekly schedule saved successfully"
	OverrideSetSuccess   = "date override saved successfully"
	OverrideClearSuccess = "date override removed successfully"

	// Booking messages
	BookingCreateSuccess = "booking created successfully"
	BookingListSuccess   = "get bookings successfully"
	BookingCancelSuccess = "booking cancelled successfully"

	// Feedback messages
	FeedbackCreateSuccess = "feedback submitted successfully"
	FeedbackListSuccess   = "get feedback successfully"
)
