package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// A Completer produces the next assistant message for a transcript.
// The returned message may request calls to the offered tools, in which
// case the caller is expected to execute them and complete again.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error)
}
