// Package templates renders the effective plugin keys back into deployable
// forms: a gerrit.config plugin section or a Kubernetes ConfigMap.
package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/nauticalab/coder-workspace/internal/store"
)

// Embed all templates at compile time
//
//go:embed *.tmpl
var templates embed.FS

// Template names accepted by RenderTemplate. GerritConfig is written by the
// git-config encoder; the others are embedded text templates.
const (
	GerritConfig = "gerrit-config"
	ConfigMap    = "configmap"
)

// outputNames maps template names to the file RenderToDir writes.
var outputNames = map[string]string{
	GerritConfig: "gerrit.config",
	ConfigMap:    "configmap.yaml",
}

// Data is the input of every template.
type Data struct {
	Plugin    string
	Name      string
	Namespace string
	Entries   []Entry
}

// Entry is one raw plugin key.
type Entry struct {
	Key   string
	Value string
}

// EntriesFrom lists every key of src with its value, sorted by key.
func EntriesFrom(src store.Source) []Entry {
	keys := src.Keys()
	slices.Sort(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := src.Lookup(k); ok {
			entries = append(entries, Entry{Key: k, Value: v})
		}
	}
	return entries
}

// Names lists the available templates.
func Names() []string {
	return []string{GerritConfig, ConfigMap}
}

// Renderer handles template operations
type Renderer struct {
	funcs template.FuncMap
}

// NewRenderer creates a new template renderer
func NewRenderer() *Renderer {
	return &Renderer{
		funcs: template.FuncMap{
			"yamlString": yamlString,
		},
	}
}

// RenderTemplate executes templateName with data and writes the result to w.
func (r *Renderer) RenderTemplate(w io.Writer, templateName string, data *Data) error {
	if templateName == GerritConfig {
		return encodeGitConfig(w, data)
	}

	templateContent, err := templates.ReadFile(templateName + ".tmpl")
	if err != nil {
		return fmt.Errorf("unknown template %q (want one of %s)", templateName, strings.Join(Names(), ", "))
	}

	tmpl, err := template.New(templateName).Funcs(r.funcs).Parse(string(templateContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return nil
}

// RenderToDir renders templateName into outputDir and returns the file path.
func (r *Renderer) RenderToDir(outputDir, templateName string, data *Data) (string, error) {
	fileName, ok := outputNames[templateName]
	if !ok {
		return "", fmt.Errorf("unknown template %q (want one of %s)", templateName, strings.Join(Names(), ", "))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	outputPath := filepath.Join(outputDir, fileName)
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if err := r.RenderTemplate(outputFile, templateName, data); err != nil {
		return "", err
	}
	return outputPath, nil
}

// encodeGitConfig writes data as a single [plugin "<name>"] section.
func encodeGitConfig(w io.Writer, data *Data) error {
	if data.Plugin == "" || strings.ContainsAny(data.Plugin, "\n\r") {
		return fmt.Errorf("invalid plugin name %q", data.Plugin)
	}

	cfg := format.New()
	section := cfg.Section("plugin").Subsection(data.Plugin)
	for _, e := range data.Entries {
		if !isGitConfigKey(e.Key) {
			return fmt.Errorf("key %q is not a valid git-config name", e.Key)
		}
		// The decoder drops carriage returns, even inside quotes.
		if strings.ContainsRune(e.Value, '\r') {
			return fmt.Errorf("value of %s contains a carriage return, which git-config cannot hold", e.Key)
		}
		section.AddOption(e.Key, e.Value)
	}

	if err := format.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to render template %s: %w", GerritConfig, err)
	}
	return nil
}

// isGitConfigKey reports whether key is a letter followed by letters,
// digits and dashes.
func isGitConfigKey(key string) bool {
	for i, c := range key {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return key != ""
}

// yamlString renders s as a double-quoted YAML scalar.
func yamlString(s string) (string, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
