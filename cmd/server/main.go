// Command server runs the demo MCP tool server over SSE.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"mcp-sse-chat/internal/toolserver"
)

func main() {
	host := flag.String("host", "127.0.0.1", "host to listen on")
	port := flag.String("port", "8765", "port to listen on")
	flag.Parse()

	addr := fmt.Sprintf("%s:%s", *host, *port)

	log.Printf("MCP SSE server listening on http://%s/sse", addr)
	if err := http.ListenAndServe(addr, toolserver.Handler(toolserver.New())); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
