package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"eqfield":   "must match %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"date":      "must be a date formatted as YYYY-MM-DD",
	"slot_time": "must be a slot time formatted as HH:MM AM/PM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gte":     true,
	"lte":     true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "we cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientResetPasswordTokenExpired     = "reset password link already expired, please request a new one"
	ErrClientProviderNotFound              = "provider not found"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientSlotNotOffered                = "the selected time slot is not available on that date"
	ErrClientSlotAlreadyTaken              = "this slot was just taken, please choose another"
	ErrClientBookingNotOwned               = "this booking does not belong to you"
	ErrClientScheduleInvalidWeekday        = "schedule days must use lowercase english weekday names"
	ErrClientScheduleInvalidRange          = "time ranges must use 24-hour HH:MM format with start before end"
	ErrClientInvalidImageFormat            = "profile picture must be a JPEG or PNG image"
	ErrClientImageTooLarge                 = "profile picture exceeds the maximum allowed size"
)

// Developer messages
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotParseDate           = "failed to parse date parameter"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevMissingRequestID          = "request id not found in request context"
	ErrDevMissingSessionData        = "session data not found in request context"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded while processing request"
	ErrDevInvalidCredentials        = "credentials do not match any registered patient"
	ErrDevEmailAlreadyExists        = "a patient document with this email already exists"
	ErrDevPasswordsDoNotMatch       = "password and confirmation mismatch"
	ErrDevFailedToHashPassword      = "bcrypt failed to hash password"
	ErrDevAuthTokenMissing          = "authorization bearer token missing"
	ErrDevAuthTokenInvalidOrExpired = "session token invalid or expired"
	ErrDevAuthInvalidSession        = "session not found in redis"
	ErrDevAuthGenerateToken         = "failed to sign session token"
	ErrDevAuthTokenExpired          = "reset password token expired or already used"
	ErrDevAPIKeyMissingOrInvalid    = "admin api key missing or invalid"
	ErrDevProviderNotFound          = "provider document not found"
	ErrDevScheduleInvalidWeekday    = "unknown weekday key in weekly schedule payload"
	ErrDevScheduleInvalidRange      = "time range failed to parse or start is not before end"
	ErrDevBookingNotFound           = "booking document not found"
	ErrDevBookingSlotTaken          = "unique index rejected booking insert, slot already reserved"
	ErrDevBookingSlotNotOffered     = "requested slot is not part of the provider's offered slots for the date"
	ErrDevBookingNotOwned           = "booking patient id does not match session patient id"

	ErrDevDBFailedToFindDocument    = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocument = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid mongodb object id"

	ErrDevRedisSet        = "redis failed to set key"
	ErrDevRedisGet        = "redis failed to get key %s"
	ErrDevRedisDelete     = "redis failed to delete key"
	ErrDevRedisSetNX      = "redis failed to setnx key"
	ErrDevRedisUnlock     = "redis failed to release lock"
	ErrDevRedisAddToSet      = "redis failed to add members to set"
	ErrDevRedisRemoveFromSet = "redis failed to remove members from set"
	ErrDevRedisSetMembers = "redis failed to read set members"

	ErrDevMailerPublish   = "failed to publish email payload to mailer queue"
	ErrDevSMTPSendEmail   = "smtp server %s rejected the message"
	ErrDevMinioPutObject  = "minio failed to store object in bucket %s"
	ErrDevMinioPresignURL = "minio failed to presign object url"
)
