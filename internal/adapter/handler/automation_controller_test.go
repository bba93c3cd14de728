package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/internal/usecase/automation"
	"github.com/stayflowhq/stayflow/pkg/config"
	"github.com/stayflowhq/stayflow/pkg/jwt"
)

type fakeService struct {
	result *entities.PipelineResult
	err    error

	gotSession uuid.UUID
	gotAccount uuid.UUID
}

func (f *fakeService) RunFullAutomation(_ context.Context, sessionID, accountID uuid.UUID) (*entities.PipelineResult, error) {
	f.gotSession = sessionID
	f.gotAccount = accountID
	return f.result, f.err
}

type fakeSessionStore struct {
	session *entities.Session
}

func (f *fakeSessionStore) FindActiveForAccount(_ context.Context, sessionID, accountID uuid.UUID) (*entities.Session, error) {
	if f.session != nil && f.session.ID == sessionID && f.session.AccountID == accountID {
		return f.session, nil
	}
	return nil, nil
}

type fakeTaskStore struct {
	tasks []entities.Task
}

func (f *fakeTaskStore) CreateTask(_ context.Context, task *entities.Task) error {
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTaskStore) ListOpenBySession(_ context.Context, _ uuid.UUID) ([]entities.Task, error) {
	return f.tasks, nil
}

func newTestRouter(svc automation.Service, sessions automation.SessionStore, tasks automation.TaskStore, manager *jwt.Manager) *echo.Echo {
	e := echo.New()
	cfg := &config.Config{}
	controller := NewAutomationController(svc, sessions, tasks, zap.NewNop())
	NewRouter(cfg, controller, manager).Setup(e)
	return e
}

func bearerFor(t *testing.T, manager *jwt.Manager, accountID uuid.UUID) string {
	t.Helper()
	token, err := manager.GenerateAccessToken(accountID, "manager@test.local", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return "Bearer " + token
}

func TestRunAutomation_Success(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	accountID := uuid.New()
	sessionID := uuid.New()

	svc := &fakeService{result: &entities.PipelineResult{Success: true}}
	e := newTestRouter(svc, &fakeSessionStore{}, &fakeTaskStore{}, manager)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+sessionID.String()+"/automation/run", nil)
	req.Header.Set("Authorization", bearerFor(t, manager, accountID))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if svc.gotSession != sessionID {
		t.Errorf("service got session %s, want %s", svc.gotSession, sessionID)
	}
	if svc.gotAccount != accountID {
		t.Errorf("service got account %s, want %s", svc.gotAccount, accountID)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("body missing run result: %s", rec.Body.String())
	}
}

func TestRunAutomation_RequiresAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	e := newTestRouter(&fakeService{}, &fakeSessionStore{}, &fakeTaskStore{}, manager)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+uuid.NewString()+"/automation/run", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRunAutomation_BadSessionID(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	e := newTestRouter(&fakeService{}, &fakeSessionStore{}, &fakeTaskStore{}, manager)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/not-a-uuid/automation/run", nil)
	req.Header.Set("Authorization", bearerFor(t, manager, uuid.New()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRunAutomation_ErrorMapping(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"session not found", entities.ErrSessionNotFound, http.StatusNotFound},
		{"session inactive", entities.ErrSessionInactive, http.StatusConflict},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestRouter(&fakeService{err: tc.err}, &fakeSessionStore{}, &fakeTaskStore{}, manager)

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+uuid.NewString()+"/automation/run", nil)
			req.Header.Set("Authorization", bearerFor(t, manager, uuid.New()))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}

func TestListOpenTasks(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	accountID := uuid.New()

	session := entities.NewSession(accountID, entities.ScenarioPayload{})
	task := entities.NewTask(session.ID, entities.TaskTypeMaintenance, "Fix the wifi router")

	e := newTestRouter(&fakeService{},
		&fakeSessionStore{session: session},
		&fakeTaskStore{tasks: []entities.Task{*task}},
		manager)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+session.ID.String()+"/tasks/open", nil)
	req.Header.Set("Authorization", bearerFor(t, manager, accountID))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Fix the wifi router") {
		t.Errorf("body missing task: %s", rec.Body.String())
	}
}

func TestListOpenTasks_ForeignSession(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	session := entities.NewSession(uuid.New(), entities.ScenarioPayload{})
	e := newTestRouter(&fakeService{}, &fakeSessionStore{session: session}, &fakeTaskStore{}, manager)

	// Token for a different account must not see the session.
	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+session.ID.String()+"/tasks/open", nil)
	req.Header.Set("Authorization", bearerFor(t, manager, uuid.New()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
