package main

import (
	"fmt"

	digesthttp "github.com/fwojciec/digest/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := digesthttp.NewServer(deps.Service, deps.Logger)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})
	return g.Wait()
}
