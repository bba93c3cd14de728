package automation

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/pkg/ai"
)

// Summarizer turns one inbound message into a Summary, exactly once per
// message. The completed processing record is the idempotency marker: it is
// written in the same step that emits the summary, so a summary can never be
// emitted without its record.
type Summarizer struct {
	records   RecordStore
	completer ai.Completer
	parser    *Parser
	logger    *zap.Logger
}

// NewSummarizer creates a summarizer stage
func NewSummarizer(records RecordStore, completer ai.Completer, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		records:   records,
		completer: completer,
		parser:    NewParser(),
		logger:    logger,
	}
}

// Summarize produces the summary for msg, or nil when the message was
// already summarized. A duplicate-key conflict on the record insert means a
// concurrent run won the race; that is a skip, not an error. Store failures
// propagate.
func (s *Summarizer) Summarize(ctx context.Context, session *entities.Session, msg *entities.Message, mctx *MessageContext) (*entities.Summary, error) {
	existing, err := s.records.FindCompleted(ctx, session.ID, msg.ID, entities.ProcessTypeSummarization)
	if err != nil {
		return nil, err
	}
	if existing.IsCompleted() {
		s.logger.Debug("message already summarized, skipping",
			zap.String("message_id", msg.ID.String()))
		return nil, nil
	}

	summary, model := s.generate(ctx, msg, mctx)
	summary.MessageID = msg.ID

	record := entities.NewProcessingRecord(session.ID, msg.ID, entities.ProcessTypeSummarization)
	record.Input = toJSON(map[string]any{
		"body":   msg.Body,
		"sender": msg.Sender,
	})
	record.MarkCompleted(toJSON(summary), model)

	if err := s.records.CreateRecord(ctx, record); err != nil {
		if errors.Is(err, entities.ErrDuplicateRecord) {
			s.logger.Info("message summarized by a concurrent run, skipping",
				zap.String("message_id", msg.ID.String()))
			return nil, nil
		}
		return nil, err
	}

	return summary, nil
}

// generate tries the completion service and downgrades to the rule-based
// classifier on any capability failure. It never returns an error.
func (s *Summarizer) generate(ctx context.Context, msg *entities.Message, mctx *MessageContext) (*entities.Summary, string) {
	content, err := s.completer.CompleteJSON(ctx, buildSummaryPrompt(mctx, msg))
	if err != nil {
		s.logger.Warn("completion unavailable, using rule-based summary",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err))
		return fallbackSummary(msg.ID, msg.Body), fallbackModel
	}

	summary, err := s.parser.ParseSummary(content)
	if err != nil {
		s.logger.Warn("unusable completion output, using rule-based summary",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err))
		return fallbackSummary(msg.ID, msg.Body), fallbackModel
	}

	return summary, s.completer.Model()
}

// toJSON snapshots a value for a ledger column. Inputs here are always
// marshalable structs and maps.
func toJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}
