// Package advisory generates operational analysis text for a trip through
// the Gemini API. The generator is a boundary collaborator: it must never
// surface an error, only a fixed fallback string.
package advisory

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"logitrack-app/internal/models"
)

// FallbackMessage is returned on any failure path.
const FallbackMessage = "Unable to generate AI analysis. Please check API key configuration."

const emptyResponseMessage = "Analysis unavailable at this time."

// AnalysisRequest is the trip context handed to the generator.
type AnalysisRequest struct {
	Trip          models.Trip
	OriginName    string
	DestName      string
	TruckCapacity float64
}

// Analyzer produces advisory text for a trip. Implementations degrade to a
// human-readable message instead of failing.
type Analyzer interface {
	AnalyzeTrip(ctx context.Context, req AnalysisRequest) string
}

// GeminiAnalyzer calls the Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
	log    *zap.SugaredLogger
}

func NewGeminiAnalyzer(ctx context.Context, apiKey, model string, log *zap.SugaredLogger) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiAnalyzer{client: client, model: model, log: log}, nil
}

func (a *GeminiAnalyzer) AnalyzeTrip(ctx context.Context, req AnalysisRequest) string {
	prompt := buildPrompt(req)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		a.log.Errorw("gemini analysis failed", "trip_id", req.Trip.TripID, "error", err)
		return FallbackMessage
	}

	text := resp.Text()
	if text == "" {
		return emptyResponseMessage
	}
	return text
}

func buildPrompt(req AnalysisRequest) string {
	return fmt.Sprintf(`Act as a logistics expert. Analyze the following trucking trip details:

Route: %s to %s
Cargo Type: %s
Net Weight: %.0f kg
Truck Capacity: %.1f tons
Scheduled: %s

Provide a concise analysis including:
1. Potential route challenges for this specific path.
2. Handling advice for %s cargo.
3. Capacity check: Is the %.0fkg load safe for a %.1fT truck?

Keep the tone professional and operational. Max 150 words.`,
		req.OriginName, req.DestName,
		req.Trip.LoadType,
		req.Trip.NetWeight,
		req.TruckCapacity,
		req.Trip.ScheduledStartTime.Format("2006-01-02 15:04"),
		req.Trip.LoadType,
		req.Trip.NetWeight,
		req.TruckCapacity,
	)
}

// Disabled is the Analyzer used when no API key is configured.
type Disabled struct{}

func (Disabled) AnalyzeTrip(context.Context, AnalysisRequest) string {
	return FallbackMessage
}
