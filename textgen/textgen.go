// Package textgen abstracts the text generation providers behind one
// capability interface so the orchestration logic is written once and the
// backend is chosen by configuration.
package textgen

import "context"

type Request struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Generator turns a prompt into free text. Implementations return
// UPSTREAM_ERROR for transport failures and GENERATION_FAILED when the
// provider answered without usable output.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
