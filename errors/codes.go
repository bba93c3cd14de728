package errors

// ErrorCode identifies an application error class
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_FORBIDDEN        ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1006

	// Automation pipeline
	ErrorCode_SESSION_NOT_FOUND  ErrorCode = 2000
	ErrorCode_SESSION_INACTIVE   ErrorCode = 2001
	ErrorCode_PIPELINE_FAILED    ErrorCode = 2002
	ErrorCode_PROPERTY_NOT_FOUND ErrorCode = 2003

	// Store
	ErrorCode_DB_CONNECTION_FAILED    ErrorCode = 3000
	ErrorCode_DB_QUERY_FAILED         ErrorCode = 3001
	ErrorCode_DB_CONSTRAINT_VIOLATION ErrorCode = 3002

	// Completion capability
	ErrorCode_COMPLETION_UNAVAILABLE ErrorCode = 4000
	ErrorCode_COMPLETION_BAD_OUTPUT  ErrorCode = 4001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:          "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:         "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:               "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_SESSION_NOT_FOUND:       "SESSION_NOT_FOUND",
	ErrorCode_SESSION_INACTIVE:        "SESSION_INACTIVE",
	ErrorCode_PIPELINE_FAILED:         "PIPELINE_FAILED",
	ErrorCode_PROPERTY_NOT_FOUND:      "PROPERTY_NOT_FOUND",
	ErrorCode_DB_CONNECTION_FAILED:    "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
	ErrorCode_DB_CONSTRAINT_VIOLATION: "DB_CONSTRAINT_VIOLATION",
	ErrorCode_COMPLETION_UNAVAILABLE:  "COMPLETION_UNAVAILABLE",
	ErrorCode_COMPLETION_BAD_OUTPUT:   "COMPLETION_BAD_OUTPUT",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
