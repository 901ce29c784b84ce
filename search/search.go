package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shelfwise/models"
)

// Client queries a SerpAPI-compatible search endpoint for suppliers of an
// item. The orchestrator treats it as an opaque request/response function.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
	Error string `json:"error,omitempty"`
}

// SearchSuppliers looks up wholesale suppliers for the named item.
func (c *Client) SearchSuppliers(ctx context.Context, itemName string) ([]models.SupplierSearchResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("search API key not configured")
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("engine", "google")
	params.Set("q", fmt.Sprintf("%s wholesale supplier bulk order", itemName))
	params.Set("num", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("search API error: %s", parsed.Error)
	}

	results := make([]models.SupplierSearchResult, 0, len(parsed.OrganicResults))
	for _, r := range parsed.OrganicResults {
		if r.Title == "" {
			continue
		}
		results = append(results, models.SupplierSearchResult{
			Name:    r.Title,
			Website: r.Link,
			Snippet: r.Snippet,
		})
	}

	return results, nil
}
