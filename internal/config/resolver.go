package config

import (
	"strings"

	"github.com/nauticalab/coder-workspace/internal/logger"
)

// Resolver turns raw plugin configuration into a Configuration. A Resolver
// holds no per-call state and is safe for concurrent use.
type Resolver struct {
	cloneRepositoryDefault bool
	log                    logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCloneRepositoryDefault sets the enableCloneRepository value used when
// the key is not configured.
func WithCloneRepositoryDefault(enabled bool) Option {
	return func(r *Resolver) {
		r.cloneRepositoryDefault = enabled
	}
}

// WithLogger sets the logger that records dropped or malformed input.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResolver creates a Resolver. Without options, repository cloning
// defaults to disabled.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{log: logger.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves kv with a default Resolver.
func Resolve(kv KeyValueConfig) *Configuration {
	return NewResolver().Resolve(kv)
}

// Resolve builds a fresh Configuration from kv. It never fails: missing keys
// keep their defaults and malformed composite values fall back to what the
// field held before.
func (r *Resolver) Resolve(kv KeyValueConfig) *Configuration {
	cfg := NewConfiguration()
	cfg.EnableCloneRepository = r.cloneRepositoryDefault

	cfg.ServerURL = optionalString(kv, KeyServerURL)
	cfg.APIKey = optionalString(kv, KeyAPIKey)
	cfg.Organization = optionalString(kv, KeyOrganization)
	cfg.User = kv.GetStringDefault(KeyUser, cfg.User)

	cfg.TemplateID = optionalString(kv, KeyTemplateID)
	cfg.TemplateVersionID = optionalString(kv, KeyTemplateVersionID)
	cfg.TemplateVersionPresetID = optionalString(kv, KeyTemplateVersionPresetID)

	cfg.WorkspaceNameTemplate = kv.GetStringDefault(KeyWorkspaceNameTemplate, cfg.WorkspaceNameTemplate)
	cfg.AutomaticUpdates = kv.GetStringDefault(KeyAutomaticUpdates, cfg.AutomaticUpdates)
	cfg.Autostart = kv.GetBool(KeyAutostart, cfg.Autostart)
	cfg.OpenAfterCreate = kv.GetBool(KeyOpenAfterCreate, cfg.OpenAfterCreate)
	cfg.EnableDryRunPreview = kv.GetBool(KeyEnableDryRunPreview, cfg.EnableDryRunPreview)
	cfg.TTLMs = kv.GetLong(KeyTTLMs, cfg.TTLMs)
	cfg.HistoryLimit = kv.GetInt(KeyHistoryLimit, cfg.HistoryLimit)

	if slug, ok := kv.GetString(KeyAppSlug); ok && !isBlank(slug) {
		trimmed := strings.TrimSpace(slug)
		cfg.AppSlug = &trimmed
	}

	cfg.AlternateNameTemplates = r.resolveAlternateNameTemplates(kv, cfg.AlternateNameTemplates)

	cfg.WaitForAppReadyMs = kv.GetLong(KeyWaitForAppReadyMs, cfg.WaitForAppReadyMs)
	cfg.WaitPollIntervalMs = kv.GetLong(KeyWaitPollIntervalMs, cfg.WaitPollIntervalMs)

	cfg.RichParams = r.resolveRichParams(kv, cfg.RichParams)
	cfg.TemplateMappings = r.resolveTemplateMappings(kv, cfg.TemplateMappings)

	cfg.RetryAuthWithQueryParam = kv.GetBool(KeyRetryAuthWithQueryParam, cfg.RetryAuthWithQueryParam)
	if name, ok := kv.GetString(KeyAPIKeyQueryParamName); ok && !isBlank(name) {
		cfg.APIKeyQueryParamName = strings.TrimSpace(name)
	}
	cfg.AppendTokenToAppURL = kv.GetBool(KeyAppendTokenToAppURL, cfg.AppendTokenToAppURL)
	cfg.NavigateInSameTabOnBlock = kv.GetBool(KeyNavigateInSameTabOnBlock, cfg.NavigateInSameTabOnBlock)

	cfg.EnableCloneRepository = kv.GetBool(KeyEnableCloneRepository, cfg.EnableCloneRepository)

	// Must run after richParams and templateMappings are final.
	if !cfg.EnableCloneRepository {
		removeCloneParams(cfg)
	}

	return cfg
}

// resolveRichParams applies the two encodings of richParams in precedence
// order: the JSON array under richParamsJson, then the delimited list under
// richParams. The first encoding yielding at least one complete entry
// replaces current wholesale.
func (r *Resolver) resolveRichParams(kv KeyValueConfig, current []RichParam) []RichParam {
	if raw, ok := kv.GetString(KeyRichParamsJSON); ok && !isBlank(raw) {
		params, err := ParseRichParamArray(raw)
		switch {
		case err != nil:
			r.log.Debug("ignoring malformed rich params JSON", "key", KeyRichParamsJSON, "error", err)
		case len(params) > 0:
			return params
		}
	}

	if raw, ok := kv.GetString(KeyRichParams); ok && !isBlank(raw) {
		params, dropped := ParseRichParamList(raw)
		if dropped > 0 {
			r.log.Debug("dropped malformed rich param entries", "key", KeyRichParams, "dropped", dropped)
		}
		if len(params) > 0 {
			return params
		}
	}

	return current
}

func (r *Resolver) resolveTemplateMappings(kv KeyValueConfig, current []TemplateMapping) []TemplateMapping {
	raw, ok := kv.GetString(KeyTemplateMappingsJSON)
	if !ok || isBlank(raw) {
		return current
	}
	mappings, err := ParseTemplateMappings(raw)
	if err != nil {
		r.log.Debug("ignoring malformed template mappings", "key", KeyTemplateMappingsJSON, "error", err)
		return current
	}
	return mappings
}

// resolveAlternateNameTemplates prefers the JSON array form and falls back to
// the comma-separated form when the JSON is absent, malformed or empty.
func (r *Resolver) resolveAlternateNameTemplates(kv KeyValueConfig, current []string) []string {
	if raw, ok := kv.GetString(KeyAlternateNameTemplatesJSON); ok && !isBlank(raw) {
		names, err := ParseStringArray(raw)
		switch {
		case err != nil:
			r.log.Debug("ignoring malformed alternate name templates", "key", KeyAlternateNameTemplatesJSON, "error", err)
		case len(names) > 0:
			return names
		}
	}
	if raw, ok := kv.GetString(KeyAlternateNameTemplates); ok && !isBlank(raw) {
		if names := ParseStringList(raw); len(names) > 0 {
			return names
		}
	}
	return current
}

// optionalString returns nil for keys that are not set.
func optionalString(kv KeyValueConfig, key string) *string {
	v, ok := kv.GetString(key)
	if !ok {
		return nil
	}
	return &v
}
