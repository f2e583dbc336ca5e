package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type IGemini interface {
	SimplifyForSpeech(ctx context.Context, text string) (string, error)
	DescribeMenuImage(ctx context.Context, imageData []byte, menuName string) (string, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

// SimplifyForSpeech rewrites storefront copy into short plain sentences
// so the text-to-speech readout is easier to follow for screen reader users.
func (g *geminiClient) SimplifyForSpeech(ctx context.Context, text string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	prompt := fmt.Sprintf(
		"Rewrite the following text as short, plain sentences suitable for being read aloud by a screen reader. Do not add information. Text: %s",
		text,
	)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return extractText(res)
}

func (g *geminiClient) DescribeMenuImage(ctx context.Context, imageData []byte, menuName string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	prompt := fmt.Sprintf(
		"Describe this food photo for a menu item called %q in one or two sentences. Focus on what is visible on the plate.",
		menuName,
	)

	img := genai.ImageData("image/jpeg", imageData)
	res, err := model.GenerateContent(ctx, genai.Text(prompt), img)
	if err != nil {
		return "", err
	}

	return extractText(res)
}

func extractText(res *genai.GenerateContentResponse) (string, error) {
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
