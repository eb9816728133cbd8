package textgen

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/snipfeed/snipfeed/errors"
)

type OpenAI struct {
	client *openai.Client
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
	}
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       openai.GPT4,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: req.Prompt,
				},
			},
		})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUpstream, "openai chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(errors.CodeGeneration, "openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[len(resp.Choices)-1].Message.Content), nil
}
