package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const exitKeyword = "quit"

// Run drives the interactive loop until the user types the exit keyword
// or the input is closed. A failed turn is reported and the loop keeps
// going.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "MCP chat client started. Type your queries or 'quit' to exit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nQuery: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(query, exitKeyword) {
			break
		}
		if query == "" {
			continue
		}

		answer, err := s.Ask(ctx, query)
		if err != nil {
			fmt.Fprintf(out, "\nError: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\nAssistant: %s\n", answer)
	}
	return scanner.Err()
}
