package speech

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ItfTranscriber interface {
	Transcribe(ctx context.Context, audio io.Reader, fileName string) (string, error)
}

type transcriber struct {
	client   *openai.Client
	language string
}

func NewTranscriber() ItfTranscriber {
	language := os.Getenv("WHISPER_LANGUAGE")
	if language == "" {
		language = "id"
	}

	client := openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	return &transcriber{client: client, language: language}
}

func (t *transcriber) Transcribe(ctx context.Context, audio io.Reader, fileName string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: fileName,
		Language: t.language,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
