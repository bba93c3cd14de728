package automation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/internal/infrastructure/cache"
	"github.com/stayflowhq/stayflow/pkg/ai"
	"github.com/stayflowhq/stayflow/pkg/config"
	"github.com/stayflowhq/stayflow/pkg/runcontext"
)

// Service is the automation pipeline entry point
type Service interface {
	RunFullAutomation(ctx context.Context, sessionID, accountID uuid.UUID) (*entities.PipelineResult, error)
}

type service struct {
	sessions    SessionStore
	messages    MessageStore
	builder     *ContextBuilder
	summarizer  *Summarizer
	responder   *Responder
	taskGen     *TaskGenerator
	followUps   *FollowUpEvaluator
	escalations EscalationDetector
	runTimeout  time.Duration
	logger      *zap.Logger
}

// NewService wires the pipeline stages over the given stores and completion
// capability
func NewService(
	sessions SessionStore,
	messages MessageStore,
	records RecordStore,
	tasks TaskStore,
	properties PropertyStore,
	propertyCache *cache.PropertyCache,
	completer ai.Completer,
	cfg config.AutomationConfig,
	logger *zap.Logger,
) Service {
	loader := &propertyLoader{store: properties, cache: propertyCache, logger: logger}
	return &service{
		sessions:   sessions,
		messages:   messages,
		builder:    NewContextBuilder(messages, loader, cfg.HistoryLimit, logger),
		summarizer: NewSummarizer(records, completer, logger),
		responder:  NewResponder(messages, records, loader, completer, logger),
		taskGen:    NewTaskGenerator(tasks, logger),
		followUps:  NewFollowUpEvaluator(tasks, cfg.FollowUpThreshold, logger),
		runTimeout: cfg.RunTimeout,
		logger:     logger,
	}
}

// RunFullAutomation executes one bounded pipeline run over the session's
// unprocessed inbound messages. Stages run in a fixed order over the whole
// batch: summarize, respond, generate tasks, evaluate follow-ups, detect
// escalations. Capability failures are absorbed inside the stages; any store
// failure aborts the run with no partial result.
func (s *service) RunFullAutomation(ctx context.Context, sessionID, accountID uuid.UUID) (*entities.PipelineResult, error) {
	session, err := s.sessions.FindActiveForAccount(ctx, sessionID, accountID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, entities.ErrSessionNotFound
	}
	if !session.Active {
		return nil, entities.ErrSessionInactive
	}

	runCtx, cancel := runcontext.RunBegin(ctx, sessionID, s.runTimeout)
	defer cancel()

	meta := runcontext.Metadata(runCtx)
	log := s.logger.With(
		zap.String("run_id", meta.RunID.String()),
		zap.String("session_id", sessionID.String()))
	log.Info("automation run started")

	inbound, err := s.messages.ListUnsummarizedInbound(runCtx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &entities.PipelineResult{
		Summaries:   make([]*entities.Summary, 0, len(inbound)),
		Responses:   make([]*entities.ReplyDirective, 0),
		Tasks:       make([]*entities.Task, 0),
		FollowUps:   make([]entities.FollowUp, 0),
		Escalations: make([]entities.Escalation, 0),
	}

	for i := range inbound {
		msg := &inbound[i]
		mctx, err := s.builder.Build(runCtx, session, msg)
		if err != nil {
			return nil, err
		}
		summary, err := s.summarizer.Summarize(runCtx, session, msg, mctx)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			result.Summaries = append(result.Summaries, summary)
		}
	}

	for _, summary := range result.Summaries {
		directive, err := s.responder.Respond(runCtx, session, summary)
		if err != nil {
			return nil, err
		}
		if directive != nil {
			result.Responses = append(result.Responses, directive)
		}
	}

	for _, summary := range result.Summaries {
		task, err := s.taskGen.MaybeCreateTask(runCtx, session, summary)
		if err != nil {
			return nil, err
		}
		if task != nil {
			result.Tasks = append(result.Tasks, task)
		}
	}

	followUps, err := s.followUps.Evaluate(runCtx, sessionID)
	if err != nil {
		return nil, err
	}
	result.FollowUps = followUps

	result.Escalations = s.escalations.Detect(result.Summaries)
	result.Success = true

	log.Info("automation run finished",
		zap.Int("messages", len(inbound)),
		zap.Int("summaries", len(result.Summaries)),
		zap.Int("responses", len(result.Responses)),
		zap.Int("tasks", len(result.Tasks)),
		zap.Int("follow_ups", len(result.FollowUps)),
		zap.Int("escalations", len(result.Escalations)),
		zap.Duration("elapsed", time.Since(meta.StartTime)))

	return result, nil
}
