package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/carlosjramirezg1979/InProject/logging"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/services"
)

type RiskHandler struct {
	Service *services.RiskService
}

func NewRiskHandler(service *services.RiskService) *RiskHandler {
	return &RiskHandler{Service: service}
}

// SuggestRisks proxies the advisory call to the risk gateway. Gateway
// trouble comes back as 503; the suggestions are never stored.
func (h *RiskHandler) SuggestRisks(w http.ResponseWriter, r *http.Request) {
	var input models.RiskSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	risks, err := h.Service.SuggestRisks(r.Context(), input)
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			logging.Logger.Warnf("Event ID: RISK_GATEWAY_CIRCUIT_OPEN, Description: Risk gateway circuit breaker rejected the call: %v", err)
		} else {
			logging.Logger.Errorf("Event ID: RISK_GATEWAY_ERROR, Description: Risk suggestion call failed: %v", err)
		}
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "El servicio de sugerencia de riesgos no está disponible en este momento."})
		return
	}

	writeJSON(w, http.StatusOK, models.RiskSuggestionResponse{Risks: risks})
}
