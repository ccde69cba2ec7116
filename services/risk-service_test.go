package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/carlosjramirezg1979/InProject/models"
)

func testBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RiskGatewayCB-test",
		MaxRequests: 1,
		Timeout:     time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})
}

func suggestionInput() models.RiskSuggestionRequest {
	return models.RiskSuggestionRequest{
		ProjectDescription:  "Migración de infraestructura a la nube",
		ProjectType:         "software",
		ProjectTimeline:     "2026-01 a 2026-06",
		ProjectBudget:       "120000 USD",
		ProjectTeamSkills:   "DevOps, redes",
		ProjectDependencies: "proveedor cloud",
		ProjectAssumptions:  "presupuesto aprobado",
		RiskAppetite:        "moderado",
	}
}

func TestSuggestRisksDecodesGatewayResponse(t *testing.T) {
	var received models.RiskSuggestionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("gateway called with method %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode gateway request: %v", err)
		}
		json.NewEncoder(w).Encode(models.RiskSuggestionResponse{Risks: []models.Risk{
			{
				RiskName:             "Dependencia del proveedor",
				RiskDescription:      "El proveedor cloud puede cambiar sus condiciones.",
				RiskLikelihood:       "Medium",
				RiskImpact:           "High",
				MitigationStrategies: []string{"Diseño multi-nube"},
				RelevantFactors:      []string{"projectDependencies"},
			},
		}})
	}))
	defer server.Close()

	svc := NewRiskService(server.URL, server.Client(), testBreaker())

	risks, err := svc.SuggestRisks(context.Background(), suggestionInput())
	if err != nil {
		t.Fatalf("SuggestRisks failed: %v", err)
	}
	if len(risks) != 1 {
		t.Fatalf("got %d risks, want 1", len(risks))
	}
	if risks[0].RiskName != "Dependencia del proveedor" {
		t.Errorf("risk name = %q", risks[0].RiskName)
	}
	if risks[0].RiskLikelihood != "Medium" || risks[0].RiskImpact != "High" {
		t.Errorf("likelihood/impact = %q/%q", risks[0].RiskLikelihood, risks[0].RiskImpact)
	}
	if received.ProjectDescription != "Migración de infraestructura a la nube" {
		t.Errorf("gateway received %+v", received)
	}
}

func TestSuggestRisksGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream model unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewRiskService(server.URL, server.Client(), testBreaker())

	if _, err := svc.SuggestRisks(context.Background(), suggestionInput()); err == nil {
		t.Fatal("SuggestRisks must fail on a non-200 gateway response")
	}
}

func TestSuggestRisksBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewRiskService(server.URL, server.Client(), testBreaker())
	ctx := context.Background()

	// Trip the breaker.
	for i := 0; i < 4; i++ {
		if _, err := svc.SuggestRisks(ctx, suggestionInput()); err == nil {
			t.Fatal("expected failure while tripping breaker")
		}
	}

	_, err := svc.SuggestRisks(ctx, suggestionInput())
	if err != gobreaker.ErrOpenState {
		t.Fatalf("after consecutive failures got %v, want gobreaker.ErrOpenState", err)
	}
}
