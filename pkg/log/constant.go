package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// FieldRequestID is read from the context by the logger when present.
	FieldRequestID = "request_id"
)
