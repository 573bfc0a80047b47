// Package chat bridges a terminal user, a chat-completion API, and the
// tools of one MCP server.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	openai "github.com/sashabaranov/go-openai"

	"mcp-sse-chat/internal/llm"
)

const initialPromptName = "get_initial_prompts"

type Session struct {
	mcp       *mcp.ClientSession
	completer llm.Completer
	tools     []openai.Tool
	messages  []openai.ChatCompletionMessage
}

// New lists the server's tools, converts them into the chat API's
// function format, and seeds the transcript from the server's initial
// prompt when it offers one.
func New(ctx context.Context, session *mcp.ClientSession, completer llm.Completer) (*Session, error) {
	s := &Session{mcp: session, completer: completer}

	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("listing tools: %w", err)
		}
		converted, err := toOpenAITool(tool)
		if err != nil {
			return nil, err
		}
		s.tools = append(s.tools, converted)
	}

	s.loadInitialPrompt(ctx)
	return s, nil
}

// ToolNames lists the advertised tools, for the startup banner.
func (s *Session) ToolNames() []string {
	names := make([]string, 0, len(s.tools))
	for _, t := range s.tools {
		names = append(names, t.Function.Name)
	}
	return names
}

// Ask runs one user turn. The completer either answers directly or
// requests tool calls, which are executed against the server and fed
// back until it settles on a final answer.
func (s *Session) Ask(ctx context.Context, query string) (string, error) {
	s.messages = append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	for {
		reply, err := s.completer.Complete(ctx, s.messages, s.tools)
		if err != nil {
			return "", err
		}
		s.messages = append(s.messages, reply)

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		for _, call := range reply.ToolCalls {
			s.messages = append(s.messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    s.invokeTool(ctx, call),
			})
		}
	}
}

// invokeTool executes one requested call. A failure is rendered as an
// error description in place of the result so the completer can compose
// a corrective answer.
func (s *Session) invokeTool(ctx context.Context, call openai.ToolCall) string {
	name := call.Function.Name

	var args map[string]any
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return fmt.Sprintf("error: invalid arguments for tool %s: %v", name, err)
	}

	log.Printf("calling tool %s with args %v", name, args)
	res, err := s.mcp.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return fmt.Sprintf("error calling tool %s: %v", name, err)
	}
	return flattenContent(res)
}

func flattenContent(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		if t, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, t.Text)
		}
	}
	text := strings.Join(parts, "\n")
	if res.IsError {
		return "tool error: " + text
	}
	return text
}

func (s *Session) loadInitialPrompt(ctx context.Context) {
	// A server without the prompt is fine; the transcript starts empty.
	res, err := s.mcp.GetPrompt(ctx, &mcp.GetPromptParams{Name: initialPromptName})
	if err != nil {
		return
	}
	for _, m := range res.Messages {
		text, ok := m.Content.(*mcp.TextContent)
		if !ok {
			continue
		}
		s.messages = append(s.messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: text.Text,
		})
	}
}

func toOpenAITool(tool *mcp.Tool) (openai.Tool, error) {
	params, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return openai.Tool{}, fmt.Errorf("marshaling schema for tool %q: %w", tool.Name, err)
	}
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  json.RawMessage(params),
			Strict:      true,
		},
	}, nil
}
