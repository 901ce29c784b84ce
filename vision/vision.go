package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// shelfPrompt asks the model for one item mention per line so the text
// parser downstream can work line by line.
const shelfPrompt = `You are an inventory assistant. Look at this photo of a store shelf and list every distinct product you can see together with how many units are visible. Respond with plain text, one item per line, in the format "<quantity> x <product name>". Do not add any other text.`

// Client wraps the Gemini multimodal API for shelf photo analysis.
type Client struct {
	apiKey string
	model  string
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, model: "gemini-1.5-pro"}
}

// DescribeShelf sends a shelf photo to the vision model and returns its
// free-text item list. imageData is a data URL ("data:image/png;base64,...").
func (v *Client) DescribeShelf(ctx context.Context, imageData string) (string, error) {
	format, raw, err := decodeDataURL(imageData)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(v.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(v.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(shelfPrompt),
		genai.ImageData(format, raw),
	)
	if err != nil {
		return "", fmt.Errorf("failed to analyze shelf photo: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision model returned no content")
	}

	return fmt.Sprint(resp.Candidates[0].Content.Parts[0]), nil
}

// decodeDataURL splits a base64 data URL into its image format and raw bytes.
func decodeDataURL(imageData string) (string, []byte, error) {
	parts := strings.Split(imageData, ";base64,")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid image data format")
	}

	mimeParts := strings.Split(strings.TrimPrefix(parts[0], "data:"), "/")
	if len(mimeParts) != 2 {
		return "", nil, fmt.Errorf("invalid image mime type")
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return mimeParts[1], raw, nil
}
