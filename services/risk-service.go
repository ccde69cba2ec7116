package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/carlosjramirezg1979/InProject/models"
)

// RiskService calls the risk-suggestion gateway: a stateless advisory
// endpoint that takes project attributes and returns candidate risks.
// Nothing it returns is persisted. The call runs behind a circuit
// breaker so a degraded gateway fails fast instead of tying up form
// submissions.
type RiskService struct {
	GatewayURL string
	HTTPClient *http.Client
	Breaker    *gobreaker.CircuitBreaker
}

func NewRiskService(gatewayURL string, httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *RiskService {
	return &RiskService{
		GatewayURL: gatewayURL,
		HTTPClient: httpClient,
		Breaker:    breaker,
	}
}

// SuggestRisks posts the project attributes to the gateway and decodes
// the suggested risks.
func (s *RiskService) SuggestRisks(ctx context.Context, input models.RiskSuggestionRequest) ([]models.Risk, error) {
	result, err := s.Breaker.Execute(func() (interface{}, error) {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to encode risk suggestion request: %v", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.GatewayURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("risk gateway unreachable: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("risk gateway returned status %d", resp.StatusCode)
		}

		var decoded models.RiskSuggestionResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("failed to decode risk gateway response: %v", err)
		}
		return decoded.Risks, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Risk), nil
}
