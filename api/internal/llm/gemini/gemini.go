package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrNoAPIKey = errors.New("GEMINI_API_KEY is empty")

// generator is the part of *genai.GenerativeModel the engine uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Engine struct {
	Model string

	cl *genai.Client
	m  generator
}

// New builds the process-wide engine. With an empty key no client is created
// and every Ask fails with ErrNoAPIKey.
func New(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Engine, error) {
	e := &Engine{Model: strings.TrimSpace(model)}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return e, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	cl, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	e.cl = cl
	e.m = cl.GenerativeModel(e.Model)
	return e, nil
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Ask(ctx context.Context, prompt string) (string, error) {
	if e.m == nil {
		return "", ErrNoAPIKey
	}
	resp, err := e.m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) || isAPIErrorReply(err) {
			return "", nil
		}
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return firstText(resp), nil
}

// isAPIErrorReply reports whether the upstream answered with a parsed JSON
// error body (bad key, quota, invalid argument). Such a reply has no candidate
// text; transport failures and unparsable bodies stay errors.
func isAPIErrorReply(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Message != "" || len(apiErr.Errors) > 0 || len(apiErr.Details) > 0
}

func (e *Engine) Close() error {
	if e.cl == nil {
		return nil
	}
	return e.cl.Close()
}

// firstText returns the text of the first part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 {
		return ""
	}
	if t, ok := c.Content.Parts[0].(genai.Text); ok {
		return string(t)
	}
	return ""
}
