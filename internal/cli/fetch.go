package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nauticalab/coder-workspace/internal/client"
)

// FetchOptions holds configuration for the fetch command
type FetchOptions struct {
	ServerURL string
	Plugin    string
	Output    string
	Timeout   time.Duration
	Retries   int
}

// RunFetch reads the configuration from a running server and prints it.
func RunFetch(ctx context.Context, w io.Writer, opts FetchOptions) error {
	var clientOpts []client.Option
	if opts.Plugin != "" {
		clientOpts = append(clientOpts, client.WithPlugin(opts.Plugin))
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, client.WithTimeout(opts.Timeout))
	}
	if opts.Retries > 0 {
		clientOpts = append(clientOpts, client.WithRetries(opts.Retries))
	}

	c := client.NewClient(opts.ServerURL, clientOpts...)
	cfg, err := c.FetchConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch configuration from %s: %w", opts.ServerURL, err)
	}
	return WriteConfig(w, cfg, opts.Output)
}
