package main

import (
	"fmt"

	"github.com/fwojciec/pagechat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	s := newSession(deps, c.URL)

	reply, err := s.Send(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		if pagechat.ErrorCode(err) != pagechat.EINVALID {
			fmt.Fprintln(deps.Stdout, pagechat.ErrorReply)
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
