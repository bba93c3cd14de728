package automation

import (
	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// EscalationDetector flags summaries that need a human. Pure: it reads only
// the summaries produced in this run and touches no store.
type EscalationDetector struct{}

// Detect returns one escalation per summary at urgent priority or with
// urgent sentiment
func (EscalationDetector) Detect(summaries []*entities.Summary) []entities.Escalation {
	escalations := make([]entities.Escalation, 0)
	for _, summary := range summaries {
		if summary == nil {
			continue
		}

		var reason string
		switch {
		case summary.Priority == entities.PriorityUrgent:
			reason = "message classified at urgent priority"
		case summary.Sentiment == "urgent":
			reason = "urgent sentiment detected"
		default:
			continue
		}

		escalations = append(escalations, entities.Escalation{
			MessageID:         summary.MessageID,
			Reason:            reason,
			Summary:           summary,
			RecommendedAction: "Notify the on-call property manager immediately",
		})
	}
	return escalations
}
