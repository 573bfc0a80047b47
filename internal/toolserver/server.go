// Package toolserver builds the demo MCP server: one arithmetic tool,
// one static greeting resource, and the prompt a chat client seeds its
// transcript with.
package toolserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	GreetingURI  = "greeting://welcome"
	greetingText = "Hello! You are connected to the demo MCP server."

	InitialPromptName = "get_initial_prompts"
	seedText          = "You are a helpful assistant. Use the available tools for any arithmetic instead of computing it yourself."
)

type AddInput struct {
	A float64 `json:"a" jsonschema:"the first addend"`
	B float64 `json:"b" jsonschema:"the second addend"`
}

type AddOutput struct {
	Sum float64 `json:"sum" jsonschema:"the sum of 'a' and 'b'"`
}

func Add(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (
	*mcp.CallToolResult,
	AddOutput,
	error,
) {
	return nil, AddOutput{Sum: input.A + input.B}, nil
}

func New() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "demo-tools", Version: "v0.1.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{Name: "add", Description: "Adds two numbers"}, Add)

	server.AddResource(&mcp.Resource{
		URI:         GreetingURI,
		Name:        "greeting",
		Description: "A static welcome message",
		MIMEType:    "text/plain",
	}, readGreeting)

	server.AddPrompt(&mcp.Prompt{
		Name:        InitialPromptName,
		Description: "Messages a chat client should start its transcript with",
	}, initialPrompts)

	return server
}

func readGreeting(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      GreetingURI,
			MIMEType: "text/plain",
			Text:     greetingText,
		}},
	}, nil
}

func initialPrompts(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: seedText},
		}},
	}, nil
}

// Handler wraps the MCP server in its HTTP surface: the SSE endpoint at
// /sse plus a health check.
func Handler(server *mcp.Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Mount("/sse", mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server }, nil))
	return r
}
