package automation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// assignment maps a summary category to a task type and default assignee
type assignment struct {
	taskType     entities.TaskType
	assigneeName string
	assigneeRole string
}

var assignments = map[string]assignment{
	entities.CategoryMaintenance: {entities.TaskTypeMaintenance, "Maintenance Team", "Maintenance"},
	entities.CategoryCleaning:    {entities.TaskTypeCleaning, "Cleaning Team", "Cleaning"},
	entities.CategoryComplaint:   {entities.TaskTypeInspection, "Property Manager", "Management"},
}

var defaultAssignment = assignment{entities.TaskTypeGeneral, "Support Team", "Support Staff"}

// TaskGenerator derives staff tasks from actionable summaries
type TaskGenerator struct {
	tasks  TaskStore
	logger *zap.Logger
}

// NewTaskGenerator creates a task-generation stage
func NewTaskGenerator(tasks TaskStore, logger *zap.Logger) *TaskGenerator {
	return &TaskGenerator{tasks: tasks, logger: logger}
}

// MaybeCreateTask creates a task for the summary, or nil when the summary
// does not warrant one. Only maintenance and cleaning categories produce
// tasks, plus anything at urgent priority regardless of category.
func (g *TaskGenerator) MaybeCreateTask(ctx context.Context, session *entities.Session, summary *entities.Summary) (*entities.Task, error) {
	if summary == nil || !summary.ActionRequired {
		return nil, nil
	}
	if summary.Category != entities.CategoryMaintenance &&
		summary.Category != entities.CategoryCleaning &&
		summary.Priority != entities.PriorityUrgent {
		return nil, nil
	}

	asg, ok := assignments[summary.Category]
	if !ok {
		asg = defaultAssignment
	}

	title := summary.ActionTitle
	if title == "" {
		title = "Guest Request"
	}

	task := entities.NewTask(session.ID, asg.taskType, title)
	task.Priority = entities.TaskPriority(summary.Priority)
	task.PropertyID = session.Scenario.PropertyID
	task.AssigneeName = asg.assigneeName
	task.AssigneeRole = asg.assigneeRole
	task.Description = taskDescription(summary)

	sourceID := summary.MessageID
	task.SourceMessageID = &sourceID

	if err := g.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	g.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("type", string(task.Type)),
		zap.String("priority", string(task.Priority)),
		zap.String("assignee", task.AssigneeName))

	return task, nil
}

func taskDescription(summary *entities.Summary) string {
	desc := fmt.Sprintf("Category: %s\nPriority: %s", summary.Category, summary.Priority)
	if len(summary.KeyInformation) > 0 {
		desc += "\nDetails: " + strings.Join(summary.KeyInformation, "; ")
	}
	return desc
}
