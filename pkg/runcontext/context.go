package runcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type keyContext string

var (
	keyRunID     keyContext = "run_id"
	keySessionID keyContext = "session_id"
	keyStartTime keyContext = "run_start_time"
)

// RunMetadata holds metadata for one pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	SessionID uuid.UUID
	StartTime time.Time
}

// RunBegin derives a bounded context for one automation run. The timeout
// caps the whole run, including completion-service calls. There is no retry
// layer here; a run either finishes or its error propagates to the caller.
func RunBegin(parentCtx context.Context, sessionID uuid.UUID, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	ctx = context.WithValue(ctx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keySessionID, sessionID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// GetRunID extracts the run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) (uuid.UUID, bool) {
	sessionID, ok := ctx.Value(keySessionID).(uuid.UUID)
	return sessionID, ok
}

// GetStartTime extracts the run start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// Metadata extracts all run metadata from context
func Metadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	sessionID, _ := GetSessionID(ctx)
	startTime, _ := GetStartTime(ctx)

	return &RunMetadata{
		RunID:     runID,
		SessionID: sessionID,
		StartTime: startTime,
	}
}
