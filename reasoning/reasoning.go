package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"shelfwise/models"
)

// ErrMalformedOutput is returned when the model's response does not parse
// into a valid recommendation. Callers treat it like any collaborator failure.
var ErrMalformedOutput = errors.New("reasoning model returned malformed output")

// Client asks Gemini to pick a supplier and order size from the gathered
// search results, prediction, and existing supplier book.
type Client struct {
	apiKey string
	model  string
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, model: "gemini-1.5-pro"}
}

// RecommendationInput is everything the model gets to reason over.
type RecommendationInput struct {
	ItemName          string                        `json:"item_name"`
	Prediction        *models.StockOutPrediction    `json:"prediction,omitempty"`
	ReorderLevels     models.ReorderLevels          `json:"reorder_levels"`
	SearchResults     []models.SupplierSearchResult `json:"search_results"`
	ExistingSuppliers []models.Supplier             `json:"existing_suppliers"`
}

// Recommend produces a schema-validated purchase recommendation.
func (r *Client) Recommend(ctx context.Context, input RecommendationInput) (*models.Recommendation, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(r.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize reasoning input: %w", err)
	}

	prompt := fmt.Sprintf(
		`You are a purchasing assistant for a small retail business. Based on the JSON data below, recommend one supplier and an order for the item %q. Prefer a supplier from existing_suppliers when one matches; otherwise pick the most credible search result. The quantity should restock to the maximum stock level. Respond with ONLY a JSON object with the keys: supplier_name (string), quantity (integer), unit_price (number), contact (string, may be empty), reasoning (string, one sentence).

Data: %s`,
		input.ItemName,
		string(payload),
	)

	model := client.GenerativeModel(r.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrMalformedOutput
	}

	raw := fmt.Sprint(resp.Candidates[0].Content.Parts[0])
	return ParseRecommendation(raw)
}

// ParseRecommendation validates the model's raw text against the expected
// schema. Untyped field access into the model output is never allowed past
// this boundary.
func ParseRecommendation(raw string) (*models.Recommendation, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var rec models.Recommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if rec.SupplierName == "" || rec.Quantity <= 0 {
		return nil, fmt.Errorf("%w: missing supplier name or quantity", ErrMalformedOutput)
	}

	return &rec, nil
}
