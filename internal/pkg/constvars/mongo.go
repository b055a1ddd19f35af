package constvars

const (
	MongoCollectionPatients  = "patients"
	MongoCollectionProviders = "providers"
	MongoCollectionBookings  = "bookings"
	MongoCollectionFeedback  = "feedback"
)
