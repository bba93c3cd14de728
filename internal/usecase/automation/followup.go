package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// FollowUpEvaluator emits reminders for tasks that have sat pending longer
// than the configured threshold. Reminders are part of the run result only;
// nothing is persisted and task state is never touched.
type FollowUpEvaluator struct {
	tasks     TaskStore
	threshold time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewFollowUpEvaluator creates a follow-up stage with the given staleness
// threshold
func NewFollowUpEvaluator(tasks TaskStore, threshold time.Duration, logger *zap.Logger) *FollowUpEvaluator {
	if threshold <= 0 {
		threshold = 2 * time.Hour
	}
	return &FollowUpEvaluator{
		tasks:     tasks,
		threshold: threshold,
		now:       time.Now,
		logger:    logger,
	}
}

// Evaluate returns one reminder per pending task older than the threshold.
// In-progress tasks are considered attended and never produce reminders.
func (e *FollowUpEvaluator) Evaluate(ctx context.Context, sessionID uuid.UUID) ([]entities.FollowUp, error) {
	open, err := e.tasks.ListOpenBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	followUps := make([]entities.FollowUp, 0)
	for i := range open {
		task := &open[i]
		if task.Status != entities.TaskStatusPending {
			continue
		}
		if task.Age(now) <= e.threshold {
			continue
		}
		followUps = append(followUps, entities.FollowUp{
			TaskID: task.ID,
			Type:   "reminder",
			Message: fmt.Sprintf("Task %q has been pending for over %s and may need attention.",
				task.Title, e.threshold),
		})
	}

	if len(followUps) > 0 {
		e.logger.Info("stale pending tasks found",
			zap.String("session_id", sessionID.String()),
			zap.Int("count", len(followUps)))
	}

	return followUps, nil
}
