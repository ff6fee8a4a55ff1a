package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nauticalab/coder-workspace/internal/config"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// ErrInvalidConfig is returned by RunValidate when problems were reported.
var ErrInvalidConfig = errors.New("configuration is invalid")

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	Sources      SourceOptions
	CloneDefault bool
	// Strict treats unknown keys as errors instead of warnings.
	Strict bool
}

// RunValidate lints the configured sources and reports problems to w.
func RunValidate(ctx context.Context, w io.Writer, opts ValidateOptions) error {
	fmt.Fprintln(w, "🔍 Validating coder-workspace configuration...")

	src, err := BuildSource(ctx, opts.Sources)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return err
	}

	failed := false
	for _, key := range config.UnknownKeys(src.Keys()) {
		if opts.Strict {
			fmt.Fprintf(w, "❌ Unknown key: %s\n", key)
			failed = true
		} else {
			fmt.Fprintf(w, "⚠️  Warning: unknown key %s is ignored\n", key)
		}
	}

	cfg := NewResolver(opts.CloneDefault).Resolve(store.NewValues(src))
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		failed = true
	}

	if failed {
		return ErrInvalidConfig
	}
	fmt.Fprintf(w, "✅ Configuration is valid (%d rich params, %d template mappings)\n",
		len(cfg.RichParams), len(cfg.TemplateMappings))
	return nil
}
