// Command client connects to the MCP SSE server and runs an interactive
// chat loop against the OpenAI chat-completion API.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mcp-sse-chat/internal/chat"
	"mcp-sse-chat/internal/config"
	"mcp-sse-chat/internal/llm"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "mcp-sse-chat", Version: "v0.1.0"}, nil)

	log.Printf("connecting to MCP server at %s", cfg.ServerURL)
	session, err := client.Connect(ctx, &mcp.SSEClientTransport{Endpoint: cfg.ServerURL}, nil)
	if err != nil {
		log.Fatalf("connecting to %s: %v", cfg.ServerURL, err)
	}
	defer session.Close()

	chatSession, err := chat.New(ctx, session, llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.Model))
	if err != nil {
		log.Fatalf("starting chat session: %v", err)
	}
	log.Printf("connected to MCP server with tools: %v", chatSession.ToolNames())

	if err := chatSession.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("chat loop: %v", err)
	}
}
