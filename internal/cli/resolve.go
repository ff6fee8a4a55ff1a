package cli

import (
	"context"
	"io"

	"github.com/nauticalab/coder-workspace/internal/config"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// ResolveOptions holds configuration for the resolve command
type ResolveOptions struct {
	Sources      SourceOptions
	Output       string
	CloneDefault bool
}

// NewResolver builds the resolver shared by resolve, validate and serve.
func NewResolver(cloneDefault bool) *config.Resolver {
	return config.NewResolver(
		config.WithCloneRepositoryDefault(cloneDefault),
		config.WithLogger(logger.GetDefault()),
	)
}

// RunResolve prints the configuration the server would serve.
func RunResolve(ctx context.Context, w io.Writer, opts ResolveOptions) error {
	src, err := BuildSource(ctx, opts.Sources)
	if err != nil {
		return err
	}
	cfg := NewResolver(opts.CloneDefault).Resolve(store.NewValues(src))
	return WriteConfig(w, cfg, opts.Output)
}
