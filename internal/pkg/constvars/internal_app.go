package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNPRT_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Calendar date and slot display layouts. Slot display values use the
// 12-hour clock the booking UI renders ("09:20 AM").
const (
	DateLayoutISO     = "2006-01-02"
	MonthLayoutISO    = "2006-01"
	SlotDisplayLayout = "03:04 PM"
)

// Booking kinds and statuses.
const (
	BookingKindConsultation = "consultation"
	BookingKindLabExam      = "lab"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Slot widths in minutes observed per booking flow.
const (
	SlotWidthConsultation = 20
	SlotWidthLabDefault   = 30
	SlotWidthLabExtended  = 60
)

// Redis key formats.
const (
	RedisKeyBookedSlotsFormat   = "bookedslots:%s:%s"
	RedisKeyCalendarFormat      = "calendar:%s:%s"
	RedisKeyResetPasswordFormat = "resetpwd:%s"
	RedisKeySessionFormat       = "session:%s"
	RedisKeyCalendarLock        = "lock:calendarworker"
)
