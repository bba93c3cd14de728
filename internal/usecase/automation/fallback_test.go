package automation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

func TestFallbackSummary_Classification(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		category  string
		priority  string
		sentiment string
		action    bool
	}{
		{"access beats maintenance keywords", "The wifi is broken and I can't get in, please fix", entities.CategoryCheckIn, entities.PriorityHigh, "neutral", true},
		{"lost key", "Where do I pick up the key?", entities.CategoryCheckIn, entities.PriorityHigh, "neutral", true},
		{"maintenance", "The AC is broken in the bedroom", entities.CategoryMaintenance, entities.PriorityMedium, "neutral", true},
		{"complaint", "There is so much noise from next door", entities.CategoryComplaint, entities.PriorityHigh, "negative", true},
		{"cleaning", "The room was not cleaned today", entities.CategoryCleaning, entities.PriorityMedium, "neutral", true},
		{"general", "What time does the pool open?", entities.CategoryGeneral, entities.PriorityLow, "neutral", false},
		{"empty message", "", entities.CategoryGeneral, entities.PriorityLow, "neutral", false},
		{"no keyword match in another language", "¿A qué hora abre la piscina?", entities.CategoryGeneral, entities.PriorityLow, "neutral", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary := fallbackSummary(uuid.New(), tc.body)
			if summary.Category != tc.category {
				t.Errorf("category = %q, want %q", summary.Category, tc.category)
			}
			if summary.Priority != tc.priority {
				t.Errorf("priority = %q, want %q", summary.Priority, tc.priority)
			}
			if summary.Sentiment != tc.sentiment {
				t.Errorf("sentiment = %q, want %q", summary.Sentiment, tc.sentiment)
			}
			if summary.ActionRequired != tc.action {
				t.Errorf("actionRequired = %v, want %v", summary.ActionRequired, tc.action)
			}
		})
	}
}

// Every fallback result must satisfy the same schema the completion output
// is held to.
func TestFallbackSummary_SatisfiesSchema(t *testing.T) {
	parser := NewParser()
	bodies := []string{
		"The wifi is broken and I can't get in, please fix",
		"The AC is broken",
		"noise complaint",
		"please clean the room",
		"just saying hi",
		"¿A qué hora abre la piscina?",
		"",
	}
	for _, body := range bodies {
		summary := fallbackSummary(uuid.New(), body)
		if err := parser.validate.Struct(summary); err != nil {
			t.Errorf("fallback summary for %q fails schema: %v", body, err)
		}
	}
}

func TestFallbackReply_Categories(t *testing.T) {
	checkIn := fallbackReply(&entities.Summary{Category: entities.CategoryCheckIn, Priority: entities.PriorityHigh})
	if checkIn.Message == "" {
		t.Error("check-in reply must carry text")
	}
	if !checkIn.RequiresFollowUp {
		t.Error("high priority must request follow-up")
	}

	maintenance := fallbackReply(&entities.Summary{Category: entities.CategoryMaintenance, Priority: entities.PriorityMedium})
	if maintenance.TaskType != string(entities.TaskTypeMaintenance) {
		t.Errorf("maintenance taskType = %q", maintenance.TaskType)
	}
	if maintenance.RequiresFollowUp {
		t.Error("medium priority must not request follow-up")
	}

	cleaning := fallbackReply(&entities.Summary{Category: entities.CategoryCleaning, Priority: entities.PriorityMedium})
	if cleaning.TaskType != string(entities.TaskTypeCleaning) {
		t.Errorf("cleaning taskType = %q", cleaning.TaskType)
	}

	complaint := fallbackReply(&entities.Summary{Category: entities.CategoryComplaint, Priority: entities.PriorityHigh})
	if !complaint.EscalationNeeded {
		t.Error("complaint reply must flag escalation")
	}
	if !strings.Contains(strings.ToLower(complaint.Message), "sorry") {
		t.Error("complaint reply should apologize")
	}

	general := fallbackReply(&entities.Summary{Category: entities.CategoryGeneral, Priority: entities.PriorityLow})
	if general.Message == "" {
		t.Error("default reply must carry text")
	}
	if general.TaskType != "" || general.EscalationNeeded {
		t.Error("default reply must not route anywhere")
	}
}
