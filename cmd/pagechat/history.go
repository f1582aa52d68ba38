package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagechat"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	key := pagechat.HistoryKey(deps.SessionID, c.URL)

	history, err := deps.Store.LoadHistory(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}

	if len(history) == 0 {
		fmt.Fprintln(deps.Stdout, "No messages found. Use 'pagechat chat' to start a conversation.")
		return nil
	}

	updatedAt, err := deps.Store.UpdatedAt(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Last updated: %s\n", updatedAt.Format(time.RFC3339))

	for _, msg := range history {
		printMessage(deps.Stdout, msg)
	}
	return nil
}
