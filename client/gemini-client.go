package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"p2p/config"
	"p2p/repository"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// fallback questions shown whenever the generation fails or is unconfigured
var fallbackIcebreakers = []string{
	"Quels sont vos plus grands défis stratégiques actuels ?",
	"Comment imaginez-vous l'évolution de votre métier d'ici 2 ans ?",
	"Quelle serait la collaboration idéale entre vos deux structures ?",
}

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	cfg := config.Env()
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

// GetIcebreakers generates three conversation starters for a meeting's two
// profiles. Any failure falls back to canned questions, an icebreaker is
// never worth failing a meeting over.
func (c *GeminiClient) GetIcebreakers(ctx context.Context, participant1 *repository.Participant, participant2 *repository.Participant) []string {
	if c == nil || c.client == nil {
		return fallbackIcebreakers
	}

	prompt := fmt.Sprintf(`Génère 3 questions d'icebreaker professionnelles pour une rencontre de networking entre ces deux profils :

Pair 1 : %s, %s (%s) chez %s. Bio : %s
Pair 2 : %s, %s (%s) chez %s. Bio : %s

Les questions doivent être pertinentes, favoriser la synergie et être en français.`,
		participant1.Name, participant1.Role, strings.Join(participant1.Categories, ", "), participant1.Company, participant1.Bio,
		participant2.Name, participant2.Role, strings.Join(participant2.Categories, ", "), participant2.Company, participant2.Bio)

	response, err := c.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"questions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"questions"},
		},
	})
	if err != nil {
		log.Printf("icebreaker generation failed: %v", err)
		return fallbackIcebreakers
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(response.Text()), &parsed); err != nil || len(parsed.Questions) == 0 {
		return fallbackIcebreakers
	}
	return parsed.Questions
}
