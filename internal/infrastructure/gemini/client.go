package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// SuggestBio writes a short first-person profile bio from a display name and
// skill list. Falls back to a canned bio when the API is unavailable so the
// edit-profile flow keeps working offline.
func (c *GeminiClient) SuggestBio(ctx context.Context, name string, skills []string, location string) (string, error) {
	prompt := fmt.Sprintf(`
		Write a short professional bio (2-3 sentences, first person) for a developer marketplace profile.
		Name: %s
		Skills: %s
		Location: %s

		Output: just the bio text, no quotes.
	`, name, strings.Join(skills, ", "), location)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return c.mockBio(name, skills), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return c.mockBio(name, skills), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func (c *GeminiClient) mockBio(name string, skills []string) string {
	if len(skills) == 0 {
		return fmt.Sprintf("I'm %s, a developer passionate about building great products and learning in public.", name)
	}
	return fmt.Sprintf(
		"I'm %s, a developer working with %s. I love shipping useful software and helping others grow.",
		name, strings.Join(skills, ", "),
	)
}
