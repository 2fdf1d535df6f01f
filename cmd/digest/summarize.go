package main

import (
	"fmt"

	"github.com/fwojciec/digest"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	apiKey := c.APIKey
	if apiKey == "" {
		apiKey = deps.Config.APIKey
	}

	fmt.Fprintln(deps.Stderr, "Waiting...")

	summary, err := deps.Service.Digest(deps.Ctx, &digest.Request{
		APIKey: apiKey,
		URL:    c.URL,
	})
	if err != nil {
		if digest.ErrorCode(err) == digest.EINVALID {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", digest.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "Exception: %s\n", err)
		}
		return &reportedError{err: err}
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
