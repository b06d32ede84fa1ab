package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/usecase/relation"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, user *domain.User) error { return nil }

type stubRelationRepo struct {
	relations map[int64]*domain.MentorshipRelation
	nextID    int64
}

func (s *stubRelationRepo) GetByID(_ context.Context, id int64) (*domain.MentorshipRelation, error) {
	rel, ok := s.relations[id]
	if !ok {
		return nil, domain.ErrRelationNotFound
	}
	return rel, nil
}

func (s *stubRelationRepo) Create(_ context.Context, rel *domain.MentorshipRelation) error {
	s.nextID++
	rel.ID = s.nextID
	s.relations[rel.ID] = rel
	return nil
}

func (s *stubRelationRepo) Update(_ context.Context, rel *domain.MentorshipRelation) error {
	s.relations[rel.ID] = rel
	return nil
}

func (s *stubRelationRepo) ListByUser(_ context.Context, userID int64) ([]*domain.MentorshipRelation, error) {
	var result []*domain.MentorshipRelation
	for _, rel := range s.relations {
		if rel.Involves(userID) {
			result = append(result, rel)
		}
	}
	return result, nil
}

type stubTasksRepo struct{ nextID int64 }

func (s *stubTasksRepo) Create(_ context.Context, list *domain.TasksList) error {
	s.nextID++
	list.ID = s.nextID
	return nil
}

type stubNotifier struct{}

func (stubNotifier) RelationRequested(context.Context, *domain.RelationRequestedEvent) error {
	return nil
}
func (stubNotifier) RelationAccepted(context.Context, *domain.RelationAcceptedEvent) error {
	return nil
}

type stubTxManager struct{}

func (stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestRouter(t *testing.T, userID int64) (*gin.Engine, *stubRelationRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{users: map[int64]*domain.User{
		1: {ID: 1},
		2: {ID: 2, AvailableToMentor: true},
		5: {ID: 5, NeedMentoring: true},
	}}
	relations := &stubRelationRepo{relations: make(map[int64]*domain.MentorshipRelation)}

	uc := relation.NewRelationUseCase(
		relations,
		users,
		&stubTasksRepo{},
		stubNotifier{},
		stubTxManager{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	h := NewRelationHandler(uc)

	r := gin.New()
	authenticated := func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	}
	group := r.Group("/api/v1/program_mentorship_relations", authenticated)
	group.POST("/send_request", h.SendRequest)
	group.PUT("/:org_rep_id/accept/:request_id", h.AcceptRequest)
	return r, relations
}

func sendJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validSendBody() map[string]any {
	now := time.Now()
	return map[string]any{
		"org_rep_id": 1,
		"mentor_id":  2,
		"start_date": now.Unix(),
		"end_date":   now.Add(90 * 24 * time.Hour).Unix(),
		"notes":      "please mentor",
	}
}

func TestSendRequestEndpoint(t *testing.T) {
	r, relations := newTestRouter(t, 1)

	w := sendJSON(r, http.MethodPost, "/api/v1/program_mentorship_relations/send_request", validSendBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "program mentorship relation was sent successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(relations.relations) != 1 {
		t.Errorf("relations stored = %d, want 1", len(relations.relations))
	}
}

func TestSendRequestEndpointValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(body map[string]any)
		wantCode int
	}{
		{
			name:     "missing notes",
			mutate:   func(body map[string]any) { delete(body, "notes") },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "neither mentor nor mentee",
			mutate: func(body map[string]any) {
				delete(body, "mentor_id")
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "both mentor and mentee",
			mutate: func(body map[string]any) {
				body["mentee_id"] = 5
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown mentor",
			mutate: func(body map[string]any) {
				body["mentor_id"] = 404
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "end date in the past",
			mutate: func(body map[string]any) {
				body["end_date"] = time.Now().Add(-time.Hour).Unix()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, 1)
			body := validSendBody()
			tt.mutate(body)

			w := sendJSON(r, http.MethodPost, "/api/v1/program_mentorship_relations/send_request", body)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestSendRequestEndpointUnauthenticated(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	w := sendJSON(r, http.MethodPost, "/api/v1/program_mentorship_relations/send_request", validSendBody())
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAcceptRequestEndpoint(t *testing.T) {
	r, relations := newTestRouter(t, 2)

	now := time.Now()
	relations.relations[1] = &domain.MentorshipRelation{
		ID:           1,
		ActionUserID: 1,
		State:        domain.StatePending,
		CreationDate: now.Unix(),
		StartDate:    now.Unix(),
		EndDate:      now.Add(90 * 24 * time.Hour).Unix(),
	}
	relations.relations[1].SetParties(domain.MentorOnlyParties(2))
	relations.nextID = 1

	w := sendJSON(r, http.MethodPut, "/api/v1/program_mentorship_relations/1/accept/1",
		map[string]any{"notes": "happy to"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	stored := relations.relations[1]
	if stored.AcceptDate == nil {
		t.Errorf("first accept must set the accept date")
	}
	if stored.State != domain.StatePending {
		t.Errorf("state = %q, want still pending after the first accept", stored.State)
	}
}

func TestAcceptRequestEndpointErrors(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		path     string
		body     map[string]any
		wantCode int
	}{
		{
			name:     "unknown relation",
			userID:   2,
			path:     "/api/v1/program_mentorship_relations/1/accept/404",
			body:     map[string]any{"notes": "n"},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "self accept is forbidden",
			userID:   1,
			path:     "/api/v1/program_mentorship_relations/1/accept/1",
			body:     map[string]any{"notes": "n"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "uninvolved user is forbidden",
			userID:   5,
			path:     "/api/v1/program_mentorship_relations/1/accept/1",
			body:     map[string]any{"notes": "n"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing notes",
			userID:   2,
			path:     "/api/v1/program_mentorship_relations/1/accept/1",
			body:     map[string]any{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed org rep id",
			userID:   2,
			path:     "/api/v1/program_mentorship_relations/abc/accept/1",
			body:     map[string]any{"notes": "n"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, relations := newTestRouter(t, tt.userID)
			relations.relations[1] = &domain.MentorshipRelation{
				ID:           1,
				ActionUserID: 1,
				State:        domain.StatePending,
			}
			relations.relations[1].SetParties(domain.MentorOnlyParties(2))
			relations.nextID = 1

			w := sendJSON(r, http.MethodPut, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}
