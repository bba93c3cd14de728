package automation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/pkg/ai"
)

// Responder drafts and persists the outbound reply for an actionable
// summary. Its processing record is keyed by the outbound message it
// creates, marking the reply itself as the completed unit of work.
type Responder struct {
	messages   MessageStore
	records    RecordStore
	properties *propertyLoader
	completer  ai.Completer
	parser     *Parser
	logger     *zap.Logger
}

// NewResponder creates a responder stage
func NewResponder(messages MessageStore, records RecordStore, properties *propertyLoader, completer ai.Completer, logger *zap.Logger) *Responder {
	return &Responder{
		messages:   messages,
		records:    records,
		properties: properties,
		completer:  completer,
		parser:     NewParser(),
		logger:     logger,
	}
}

// Respond creates the reply for one summary, or nil when the summary needs
// no action. Capability failures downgrade to the canned category reply;
// store failures propagate.
func (r *Responder) Respond(ctx context.Context, session *entities.Session, summary *entities.Summary) (*entities.ReplyDirective, error) {
	if summary == nil || !summary.ActionRequired {
		return nil, nil
	}

	property, err := r.properties.Load(ctx, session.Scenario.PropertyID)
	if err != nil {
		return nil, err
	}

	directive, model := r.generate(ctx, session, summary, property)

	recipient, err := r.replyRecipient(ctx, session, summary.MessageID)
	if err != nil {
		return nil, err
	}

	outbound := entities.NewOutboundMessage(session.ID, recipient, directive.Message)
	outbound.Metadata = datatypes.JSONMap{
		"source_message_id": summary.MessageID.String(),
		"model":             model,
	}
	if err := r.messages.CreateMessage(ctx, outbound); err != nil {
		return nil, err
	}

	record := entities.NewProcessingRecord(session.ID, outbound.ID, entities.ProcessTypeResponseGeneration)
	record.Input = toJSON(summary)
	record.MarkCompleted(toJSON(directive), model)
	if err := r.records.CreateRecord(ctx, record); err != nil && !errors.Is(err, entities.ErrDuplicateRecord) {
		return nil, err
	}

	directive.MessageID = summary.MessageID
	directive.OutboundMessageID = outbound.ID

	r.logger.Info("reply created",
		zap.String("message_id", summary.MessageID.String()),
		zap.String("outbound_message_id", outbound.ID.String()),
		zap.String("model", model))

	return directive, nil
}

// generate tries the completion service and downgrades to the canned
// category reply on any capability failure. It never returns an error.
func (r *Responder) generate(ctx context.Context, session *entities.Session, summary *entities.Summary, property *entities.Property) (*entities.ReplyDirective, string) {
	content, err := r.completer.CompleteJSON(ctx, buildReplyPrompt(session, summary, property))
	if err != nil {
		r.logger.Warn("completion unavailable, using canned reply",
			zap.String("message_id", summary.MessageID.String()),
			zap.Error(err))
		return fallbackReply(summary), fallbackModel
	}

	directive, err := r.parser.ParseReply(content)
	if err != nil {
		r.logger.Warn("unusable completion output, using canned reply",
			zap.String("message_id", summary.MessageID.String()),
			zap.Error(err))
		return fallbackReply(summary), fallbackModel
	}

	return directive, r.completer.Model()
}

// replyRecipient addresses the reply to the sender of the original inbound
// message, falling back to the scenario guest email, then a placeholder.
func (r *Responder) replyRecipient(ctx context.Context, session *entities.Session, messageID uuid.UUID) (string, error) {
	original, err := r.messages.GetMessageByID(ctx, messageID)
	if err != nil {
		return "", err
	}
	if original != nil && original.Sender != "" {
		return original.Sender, nil
	}
	if session.Scenario.GuestEmail != "" {
		return session.Scenario.GuestEmail, nil
	}
	return "guest", nil
}
