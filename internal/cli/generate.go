package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/nauticalab/coder-workspace/internal/store"
	"github.com/nauticalab/coder-workspace/internal/templates"
)

// GenerateOptions holds configuration for the generate command
type GenerateOptions struct {
	Sources   SourceOptions
	Template  string
	Name      string
	Namespace string
	// OutputDir writes a file instead of printing when set.
	OutputDir string
}

// RunGenerate renders the effective raw keys of every layered source as a
// gerrit.config section or a ConfigMap manifest.
func RunGenerate(ctx context.Context, w io.Writer, opts GenerateOptions) error {
	src, err := BuildSource(ctx, opts.Sources)
	if err != nil {
		return err
	}

	plugin := opts.Sources.Plugin
	if plugin == "" {
		plugin = store.DefaultPluginName
	}
	name := opts.Name
	if name == "" {
		name = plugin
	}
	data := &templates.Data{
		Plugin:    plugin,
		Name:      name,
		Namespace: opts.Namespace,
		Entries:   templates.EntriesFrom(src),
	}

	renderer := templates.NewRenderer()
	if opts.OutputDir == "" {
		return renderer.RenderTemplate(w, opts.Template, data)
	}

	path, err := renderer.RenderToDir(opts.OutputDir, opts.Template, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Generated %s\n", path)
	return nil
}
