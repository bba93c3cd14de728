package entities

import "errors"

// Domain errors
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionInactive  = errors.New("session is not active")
	ErrPropertyNotFound = errors.New("property not found")
	ErrMessageNotFound  = errors.New("message not found")

	// ErrDuplicateRecord signals a processing-record insert that conflicted
	// with the (session, message, process type) unique key. Callers treat it
	// as "already processed", not as a failure.
	ErrDuplicateRecord = errors.New("processing record already exists")
)
