package testutil

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Scripted is a Completer that plays back a fixed sequence of replies
// and records every transcript it was shown.
type Scripted struct {
	Replies []openai.ChatCompletionMessage
	Calls   [][]openai.ChatCompletionMessage
}

func (s *Scripted) Complete(_ context.Context, messages []openai.ChatCompletionMessage, _ []openai.Tool) (openai.ChatCompletionMessage, error) {
	s.Calls = append(s.Calls, append([]openai.ChatCompletionMessage(nil), messages...))
	if len(s.Calls) > len(s.Replies) {
		return openai.ChatCompletionMessage{}, fmt.Errorf("no scripted reply for completion %d", len(s.Calls))
	}
	return s.Replies[len(s.Calls)-1], nil
}
