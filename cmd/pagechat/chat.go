package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/pagechat"
)

// Chat loop commands.
const (
	quitCommand  = "/quit"
	clearCommand = "/clear"
)

// maxLineSize bounds a single line of chat input.
const maxLineSize = 1 << 20

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	s := newSession(deps, c.URL)

	// Extract up front so every message reuses the same content.
	s.ExtractContent(deps.Ctx)

	fmt.Fprintf(deps.Stdout, "%s: %s\n", pagechat.RoleAssistant, pagechat.GreetingMessage)
	for _, msg := range s.History() {
		printMessage(deps.Stdout, msg)
	}
	fmt.Fprintf(deps.Stdout, "(type %s to clear history, %s to exit)\n", clearCommand, quitCommand)

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case quitCommand:
			return nil
		case clearCommand:
			if err := s.Clear(deps.Ctx); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, "History cleared.")
			continue
		}

		reply, err := s.Send(deps.Ctx, line)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
			fmt.Fprintf(deps.Stdout, "%s: %s\n", pagechat.RoleAssistant, pagechat.ErrorReply)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %s\n", pagechat.RoleAssistant, reply)
	}

	fmt.Fprintln(deps.Stdout)
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
