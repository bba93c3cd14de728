package automation

import (
	"fmt"
	"strings"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/pkg/ai"
)

const summarySystemPrompt = `You are an assistant for a short-term rental property manager.
Interpret one guest message and return ONLY a JSON object with exactly these keys:
{
  "language": "ISO language of the message, e.g. en",
  "sentiment": "positive | neutral | negative | urgent",
  "tone": "friendly | neutral | frustrated | angry",
  "actionRequired": true or false,
  "actionTitle": "short imperative title when action is required, else empty",
  "category": "booking | maintenance | check-in | check-out | amenities | complaint | cleaning | general",
  "priority": "low | medium | high | urgent",
  "keyInformation": ["short factual points extracted from the message"],
  "suggestedResponse": "one suggested reply to the guest"
}
Do not add any other keys or any text outside the JSON object.`

const replySystemPrompt = `You are a guest-messaging assistant for a short-term rental property manager.
Write a warm, concise reply to the guest using ONLY the property information provided.
Never invent access codes, times or amenities that are not listed.
Return ONLY a JSON object with exactly these keys:
{
  "message": "the reply text to send to the guest",
  "requiresFollowUp": true or false,
  "escalationNeeded": true or false,
  "taskType": "maintenance | cleaning | inspection | general or empty"
}
Do not add any other keys or any text outside the JSON object.`

// buildSummaryPrompt renders the summarization request for one message
func buildSummaryPrompt(mctx *MessageContext, msg *entities.Message) []ai.ChatMessage {
	var b strings.Builder

	fmt.Fprintf(&b, "Guest: %s\n", mctx.Guest.Name)
	if mctx.Guest.CheckIn != "" || mctx.Guest.CheckOut != "" {
		fmt.Fprintf(&b, "Stay: %s to %s\n", mctx.Guest.CheckIn, mctx.Guest.CheckOut)
	}
	if mctx.Property.Name != "" {
		fmt.Fprintf(&b, "Property: %s", mctx.Property.Name)
		if mctx.Property.Address != "" {
			fmt.Fprintf(&b, ", %s", mctx.Property.Address)
		}
		b.WriteString("\n")
	}
	if history := formatHistory(mctx.History); history != "" {
		fmt.Fprintf(&b, "\nConversation so far:\n%s", history)
	}
	fmt.Fprintf(&b, "\nNew guest message:\n%s\n", msg.Body)

	return []ai.ChatMessage{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// buildReplyPrompt renders the reply-generation request for one summary
func buildReplyPrompt(session *entities.Session, summary *entities.Summary, property *entities.Property) []ai.ChatMessage {
	system := replySystemPrompt
	if summary.Tone == "frustrated" || summary.Tone == "angry" || summary.Sentiment == "negative" {
		system += "\nThe guest sounds upset. Acknowledge the problem first and be especially empathetic."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Guest: %s\n", session.GuestDisplayName())
	fmt.Fprintf(&b, "Message category: %s, priority: %s\n", summary.Category, summary.Priority)
	if summary.ActionTitle != "" {
		fmt.Fprintf(&b, "Requested action: %s\n", summary.ActionTitle)
	}
	if len(summary.KeyInformation) > 0 {
		fmt.Fprintf(&b, "Key points: %s\n", strings.Join(summary.KeyInformation, "; "))
	}
	if info := propertyInfoBlock(property); info != "" {
		fmt.Fprintf(&b, "\nProperty information:\n%s", info)
	}
	if summary.SuggestedResponse != "" {
		fmt.Fprintf(&b, "\nDraft suggestion: %s\n", summary.SuggestedResponse)
	}

	return []ai.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: b.String()},
	}
}

// formatHistory renders history entries oldest first, one line each
func formatHistory(history []HistoryEntry) string {
	var b strings.Builder
	for _, h := range history {
		speaker := "Guest"
		if h.Direction == entities.MessageDirectionOutbound {
			speaker = "Host"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, h.Text)
	}
	return b.String()
}

// propertyInfoBlock renders the property fields the responder may share with
// guests. Order is fixed; blank values and literal "null" strings are
// skipped so partially filled records never leak placeholder text.
func propertyInfoBlock(property *entities.Property) string {
	if property == nil {
		return ""
	}

	fields := []struct {
		label string
		value string
	}{
		{"Property name", property.Name},
		{"Address", property.Address},
		{"Check-in time", property.CheckInTime},
		{"Check-out time", property.CheckOutTime},
		{"WiFi network", property.WifiName},
		{"WiFi password", property.WifiPassword},
		{"Access instructions", property.AccessInstructions},
		{"Parking", property.ParkingInfo},
		{"House rules", property.HouseRules},
		{"Emergency contact", property.EmergencyContact},
	}

	var b strings.Builder
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" || strings.EqualFold(v, "null") {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, v)
	}
	for _, faq := range property.AnsweredFAQs() {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", faq.Question, faq.Answer)
	}
	return b.String()
}
