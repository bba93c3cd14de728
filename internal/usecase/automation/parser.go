package automation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// Parser parses and validates completion-service output. Any failure here is
// a capability error; callers downgrade to the deterministic fallback rather
// than surfacing it.
type Parser struct {
	validate *validator.Validate
}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{validate: validator.New()}
}

// ParseSummary parses a strict summary JSON object
func (p *Parser) ParseSummary(content string) (*entities.Summary, error) {
	content = extractJSON(content)

	var summary entities.Summary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary JSON: %w", err)
	}

	summary.Language = strings.ToLower(strings.TrimSpace(summary.Language))
	summary.Sentiment = strings.ToLower(strings.TrimSpace(summary.Sentiment))
	summary.Tone = strings.ToLower(strings.TrimSpace(summary.Tone))
	summary.Category = strings.ToLower(strings.TrimSpace(summary.Category))
	summary.Priority = strings.ToLower(strings.TrimSpace(summary.Priority))

	if err := p.validate.Struct(&summary); err != nil {
		return nil, fmt.Errorf("summary failed schema validation: %w", err)
	}
	return &summary, nil
}

// ParseReply parses a strict reply-directive JSON object
func (p *Parser) ParseReply(content string) (*entities.ReplyDirective, error) {
	content = extractJSON(content)

	var directive entities.ReplyDirective
	if err := json.Unmarshal([]byte(content), &directive); err != nil {
		return nil, fmt.Errorf("failed to parse reply JSON: %w", err)
	}

	directive.Message = strings.TrimSpace(directive.Message)
	directive.TaskType = strings.ToLower(strings.TrimSpace(directive.TaskType))

	if err := p.validate.Struct(&directive); err != nil {
		return nil, fmt.Errorf("reply failed schema validation: %w", err)
	}
	return &directive, nil
}

// extractJSON strips a markdown code fence the completion service sometimes
// wraps around its JSON output
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
