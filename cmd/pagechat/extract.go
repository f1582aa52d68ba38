package main

import (
	"fmt"

	"github.com/fwojciec/pagechat"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}

	ext := deps.Extractor.Extract(html)
	if ext == nil || ext.Content == "" {
		fmt.Fprintf(deps.Stderr, "error: no readable content found at %s\n", c.URL)
		return pagechat.Errorf(pagechat.ENOTFOUND, "no readable content found at %s", c.URL)
	}

	if !c.Markdown {
		fmt.Fprintln(deps.Stdout, ext.Content)
		return nil
	}

	md, err := deps.Converter.Convert(ext.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagechat.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
