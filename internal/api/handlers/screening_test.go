package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitgate/fitgate/internal/api/dto"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/audit"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/validator"
	"github.com/fitgate/fitgate/internal/services"
	"github.com/fitgate/fitgate/internal/testutil"
)

func newTestScreeningHandler(t *testing.T) (*ScreeningHandler, user.Service) {
	t.Helper()

	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewUserService(mockRepo, log, audit.NewTrail(10), 4, time.Hour)

	return NewScreeningHandler(service, log, validator.New()), service
}

func boolPtr(b bool) *bool { return &b }

func allNoAnswers() dto.ScreeningRequest {
	no := boolPtr(false)
	return dto.ScreeningRequest{
		HeartCondition:     no,
		ChestPainActivity:  no,
		ChestPainRest:      no,
		DizzinessOrBalance: no,
		BoneOrJointProblem: no,
		BloodPressureMeds:  no,
		OtherReason:        no,
	}
}

func TestScreeningHandler_Status(t *testing.T) {
	handler, _ := newTestScreeningHandler(t)

	tests := []struct {
		name         string
		complete     bool
		wantComplete bool
		wantMessage  bool
	}{
		{"unscreened user gets a prompt", false, false, true},
		{"screened user gets no prompt", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &user.User{ID: 1, Email: "status@example.com", ScreeningComplete: tt.complete}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/screening", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, u))
			rr := httptest.NewRecorder()

			handler.Status(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
			}

			var response struct {
				Data dto.ScreeningResponse `json:"data"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Data.Complete != tt.wantComplete {
				t.Errorf("complete = %v, want %v", response.Data.Complete, tt.wantComplete)
			}
			if (response.Data.Message != "") != tt.wantMessage {
				t.Errorf("message = %q, want message: %v", response.Data.Message, tt.wantMessage)
			}
		})
	}
}

func TestScreeningHandler_Submit(t *testing.T) {
	handler, service := newTestScreeningHandler(t)

	registered, err := service.Register(context.Background(), "parq@example.com", "password123", "")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	answers := allNoAnswers()
	answers.HeartCondition = boolPtr(true)

	body, _ := json.Marshal(answers)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screening", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, registered))
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var response struct {
		Data dto.ScreeningResponse `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Data.Complete {
		t.Error("screening must be marked complete")
	}
	if !response.Data.PhysicianAdvised {
		t.Error("a yes answer must set the physician advisory")
	}

	stored, err := service.GetByID(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !stored.ScreeningComplete {
		t.Error("screening completion not persisted")
	}
}

func TestScreeningHandler_SubmitMissingAnswers(t *testing.T) {
	handler, service := newTestScreeningHandler(t)

	registered, err := service.Register(context.Background(), "partial@example.com", "password123", "")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	// Omitting answers must fail validation; partial questionnaires do not
	// complete the gate.
	partial := dto.ScreeningRequest{HeartCondition: boolPtr(false)}
	body, _ := json.Marshal(partial)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screening", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, registered))
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
	}

	stored, err := service.GetByID(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.ScreeningComplete {
		t.Error("partial submission must not complete screening")
	}
}

func TestScreeningHandler_SubmitUnauthenticated(t *testing.T) {
	handler, _ := newTestScreeningHandler(t)

	body, _ := json.Marshal(allNoAnswers())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screening", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
	}
}
