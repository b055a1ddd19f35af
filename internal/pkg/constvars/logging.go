package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingSessionDataKey  = "session_data"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingQueryKey        = "query"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingProviderIDKey   = "provider_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingBookingIDKey    = "booking_id"
	LoggingDateKey         = "date"
	LoggingSlotTimeKey     = "slot_time"
	LoggingEmailSubjectKey = "email_subject"
	LoggingQueueKey        = "queue"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingLockTTLKey      = "lock_ttl"
)
