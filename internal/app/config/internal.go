package config

type InternalConfig struct {
	App    App
	JWT    AppJWT
	Mailer AppMailer
	Minio  AppMinio
}

type App struct {
	Env                                     string
	Port                                    string
	Version                                 string
	Address                                 string
	Timezone                                string
	EndpointPrefix                          string
	ResetPasswordUrl                        string
	SuperadminAPIKey                        string
	RabbitMQMailerQueue                     string
	CalendarWorkerCronSpec                  string
	CalendarWindowDays                      int
	MaxRequests                             int
	ShutdownTimeoutInSeconds                int
	MaxTimeRequestsPerSeconds               int
	RequestBodyLimitInMegabyte              int
	ForgotPasswordTokenExpiredTimeInMinutes int
	MailerSendRatePerSecond                 int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	ProfilePictureMaxUploadSizeInMB     int64
	PreSignedUrlObjectExpiryTimeInHours int
}
