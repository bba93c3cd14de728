package automation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

func TestMaybeCreateTask_Gate(t *testing.T) {
	cases := []struct {
		name     string
		summary  *entities.Summary
		wantTask bool
		wantType entities.TaskType
		assignee string
	}{
		{
			name:    "no action required never creates a task",
			summary: &entities.Summary{ActionRequired: false, Category: entities.CategoryMaintenance, Priority: entities.PriorityUrgent},
		},
		{
			name:     "maintenance category triggers",
			summary:  &entities.Summary{ActionRequired: true, Category: entities.CategoryMaintenance, Priority: entities.PriorityMedium},
			wantTask: true,
			wantType: entities.TaskTypeMaintenance,
			assignee: "Maintenance Team",
		},
		{
			name:     "cleaning category triggers",
			summary:  &entities.Summary{ActionRequired: true, Category: entities.CategoryCleaning, Priority: entities.PriorityLow},
			wantTask: true,
			wantType: entities.TaskTypeCleaning,
			assignee: "Cleaning Team",
		},
		{
			name:    "check-in at high priority does not trigger",
			summary: &entities.Summary{ActionRequired: true, Category: entities.CategoryCheckIn, Priority: entities.PriorityHigh},
		},
		{
			name:     "urgent priority triggers regardless of category",
			summary:  &entities.Summary{ActionRequired: true, Category: entities.CategoryBooking, Priority: entities.PriorityUrgent},
			wantTask: true,
			wantType: entities.TaskTypeGeneral,
			assignee: "Support Team",
		},
		{
			name:     "urgent complaint routes to inspection",
			summary:  &entities.Summary{ActionRequired: true, Category: entities.CategoryComplaint, Priority: entities.PriorityUrgent},
			wantTask: true,
			wantType: entities.TaskTypeInspection,
			assignee: "Property Manager",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			session := seedSession(store, uuid.New())
			tc.summary.MessageID = uuid.New()

			gen := NewTaskGenerator(store, zap.NewNop())
			task, err := gen.MaybeCreateTask(context.Background(), session, tc.summary)
			if err != nil {
				t.Fatalf("MaybeCreateTask: %v", err)
			}

			if !tc.wantTask {
				if task != nil {
					t.Fatalf("expected no task, got %+v", task)
				}
				if len(store.tasks) != 0 {
					t.Fatalf("expected no persisted tasks, got %d", len(store.tasks))
				}
				return
			}

			if task == nil {
				t.Fatal("expected a task")
			}
			if task.Type != tc.wantType {
				t.Errorf("type = %q, want %q", task.Type, tc.wantType)
			}
			if task.AssigneeName != tc.assignee {
				t.Errorf("assignee = %q, want %q", task.AssigneeName, tc.assignee)
			}
			if task.Status != entities.TaskStatusPending {
				t.Errorf("status = %q, want pending", task.Status)
			}
			if task.Priority != entities.TaskPriority(tc.summary.Priority) {
				t.Errorf("priority = %q, want %q", task.Priority, tc.summary.Priority)
			}
			if task.SourceMessageID == nil || *task.SourceMessageID != tc.summary.MessageID {
				t.Error("task must reference its source message")
			}
			if len(store.tasks) != 1 {
				t.Errorf("expected 1 persisted task, got %d", len(store.tasks))
			}
		})
	}
}

func TestMaybeCreateTask_TitleDefault(t *testing.T) {
	store := newFakeStore()
	session := seedSession(store, uuid.New())

	gen := NewTaskGenerator(store, zap.NewNop())
	task, err := gen.MaybeCreateTask(context.Background(), session, &entities.Summary{
		MessageID:      uuid.New(),
		ActionRequired: true,
		Category:       entities.CategoryMaintenance,
		Priority:       entities.PriorityMedium,
		KeyInformation: []string{"AC not cooling", "bedroom"},
	})
	if err != nil {
		t.Fatalf("MaybeCreateTask: %v", err)
	}
	if task.Title != "Guest Request" {
		t.Errorf("title = %q, want the generic default", task.Title)
	}
	if task.Description == "" {
		t.Error("description must carry category, priority and key facts")
	}
}
