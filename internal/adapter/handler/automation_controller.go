package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/errors"
	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/internal/usecase/automation"
)

// AutomationController handles the endpoints that trigger and inspect
// automation runs
type AutomationController struct {
	svc      automation.Service
	sessions automation.SessionStore
	tasks    automation.TaskStore
	logger   *zap.Logger
}

// NewAutomationController creates a new automation controller
func NewAutomationController(svc automation.Service, sessions automation.SessionStore, tasks automation.TaskStore, logger *zap.Logger) *AutomationController {
	return &AutomationController{svc: svc, sessions: sessions, tasks: tasks, logger: logger}
}

// RunAutomation triggers one full pipeline run for a session and returns the
// aggregated result
func (ac *AutomationController) RunAutomation(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("session id must be a UUID"))
	}

	accountID, ok := accountIDFromContext(c)
	if !ok {
		return HandleError(ac.logger, c, errors.ErrUnauthenticated())
	}

	result, err := ac.svc.RunFullAutomation(c.Request().Context(), sessionID, accountID)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrSessionNotFound):
			return HandleError(ac.logger, c, errors.ErrSessionNotFound(sessionID.String()))
		case stdErrors.Is(err, entities.ErrSessionInactive):
			return HandleError(ac.logger, c, errors.ErrSessionInactive(sessionID.String()))
		default:
			return HandleError(ac.logger, c, errors.ErrPipelineFailed(err))
		}
	}

	return HandleSuccess(ac.logger, c, result)
}

// ListOpenTasks returns the pending and in-progress tasks of a session
func (ac *AutomationController) ListOpenTasks(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("session id must be a UUID"))
	}

	accountID, ok := accountIDFromContext(c)
	if !ok {
		return HandleError(ac.logger, c, errors.ErrUnauthenticated())
	}

	session, err := ac.sessions.FindActiveForAccount(c.Request().Context(), sessionID, accountID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrDBQueryFailed("find session", err))
	}
	if session == nil {
		return HandleError(ac.logger, c, errors.ErrSessionNotFound(sessionID.String()))
	}

	tasks, err := ac.tasks.ListOpenBySession(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrDBQueryFailed("list open tasks", err))
	}

	return HandleSuccess(ac.logger, c, map[string]interface{}{
		"session_id": sessionID,
		"tasks":      tasks,
	})
}
