package response

// Error codes returned in the response envelope.
const (
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)

// Envelope messages.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Wire formats for Date and DateTime.
// DateTimeFormat is deliberately naive (no UTC offset): schedule and due
// times are local wall-clock values and the caller attaches timezone context.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)
