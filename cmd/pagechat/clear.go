package main

import (
	"fmt"

	"github.com/fwojciec/pagechat"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Store.DeleteHistory(deps.Ctx, pagechat.HistoryKey(deps.SessionID, c.URL)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "History cleared.")
	return nil
}
