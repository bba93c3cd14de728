package automation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// fallbackModel is the model identifier recorded when a stage ran on the
// deterministic rules instead of the completion service
const fallbackModel = "rule-based"

// summaryRule is one row of the keyword classifier. Rules are evaluated in
// order and the first match wins, so access problems classify as check-in
// even when the message also mentions something broken.
type summaryRule struct {
	keywords    []string
	category    string
	priority    string
	sentiment   string
	actionTitle string
}

var summaryRules = []summaryRule{
	{
		keywords:    []string{"key", "check in", "check-in", "get in", "access"},
		category:    entities.CategoryCheckIn,
		priority:    entities.PriorityHigh,
		sentiment:   "neutral",
		actionTitle: "Help guest with check-in access",
	},
	{
		keywords:    []string{"wifi", "broken", "fix"},
		category:    entities.CategoryMaintenance,
		priority:    entities.PriorityMedium,
		sentiment:   "neutral",
		actionTitle: "Resolve maintenance issue",
	},
	{
		keywords:    []string{"noise", "complaint", "problem"},
		category:    entities.CategoryComplaint,
		priority:    entities.PriorityHigh,
		sentiment:   "negative",
		actionTitle: "Address guest complaint",
	},
	{
		keywords:    []string{"clean"},
		category:    entities.CategoryCleaning,
		priority:    entities.PriorityMedium,
		sentiment:   "neutral",
		actionTitle: "Handle cleaning request",
	},
}

// fallbackSummary classifies a message without the completion service. It is
// total: every input yields a valid summary, defaulting to an informational
// general/low result when no rule matches.
func fallbackSummary(messageID uuid.UUID, body string) *entities.Summary {
	lower := strings.ToLower(body)

	for _, r := range summaryRules {
		if !containsAny(lower, r.keywords) {
			continue
		}
		return &entities.Summary{
			MessageID:      messageID,
			Language:       "en",
			Sentiment:      r.sentiment,
			Tone:           "neutral",
			ActionRequired: true,
			ActionTitle:    r.actionTitle,
			Category:       r.category,
			Priority:       r.priority,
			KeyInformation: []string{snippet(body, 140)},
		}
	}

	return &entities.Summary{
		MessageID:      messageID,
		Language:       "en",
		Sentiment:      "neutral",
		Tone:           "neutral",
		ActionRequired: false,
		Category:       entities.CategoryGeneral,
		Priority:       entities.PriorityLow,
		KeyInformation: []string{snippet(body, 140)},
	}
}

// fallbackReply produces a canned reply keyed on the summary category.
// Follow-up is requested for high-priority summaries; complaints always flag
// escalation.
func fallbackReply(summary *entities.Summary) *entities.ReplyDirective {
	directive := &entities.ReplyDirective{
		MessageID:        summary.MessageID,
		RequiresFollowUp: summary.Priority == entities.PriorityHigh,
	}

	switch summary.Category {
	case entities.CategoryCheckIn:
		directive.Message = "Hi! Standard check-in starts at 3:00 PM and your access details are in your booking confirmation. If you are at the door and still cannot get in, reply here and we will walk you through it right away."
	case entities.CategoryMaintenance:
		directive.Message = "Thanks for letting us know. We have notified our maintenance team and someone will take care of it as soon as possible."
		directive.TaskType = string(entities.TaskTypeMaintenance)
	case entities.CategoryCleaning:
		directive.Message = "Thanks for flagging this. Our cleaning team has been notified and will sort it out shortly."
		directive.TaskType = string(entities.TaskTypeCleaning)
	case entities.CategoryComplaint:
		directive.Message = "We are very sorry about the inconvenience. A member of our team is looking into this right now and will get back to you shortly."
		directive.EscalationNeeded = true
	default:
		directive.Message = "Thanks for reaching out! We have received your message and will get back to you as soon as possible."
	}

	return directive
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
