package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nauticalab/coder-workspace/internal/config"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -o.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// WriteConfig renders cfg as indented JSON or YAML.
func WriteConfig(w io.Writer, cfg *config.Configuration, format string) error {
	switch format {
	case "", OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, OutputJSON, OutputYAML)
	}
}
