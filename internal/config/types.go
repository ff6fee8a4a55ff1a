package config

// Configuration is the resolved plugin configuration served to the web UI.
// The JSON field names are the public contract with clients.
type Configuration struct {
	ServerURL    *string `json:"serverUrl,omitempty" yaml:"serverUrl,omitempty" validate:"omitempty,url"`
	APIKey       *string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Organization *string `json:"organization,omitempty" yaml:"organization,omitempty"`
	User         string  `json:"user" yaml:"user"`

	TemplateID              *string `json:"templateId,omitempty" yaml:"templateId,omitempty"`
	TemplateVersionID       *string `json:"templateVersionId,omitempty" yaml:"templateVersionId,omitempty"`
	TemplateVersionPresetID *string `json:"templateVersionPresetId,omitempty" yaml:"templateVersionPresetId,omitempty"`

	WorkspaceNameTemplate  string   `json:"workspaceNameTemplate" yaml:"workspaceNameTemplate" validate:"required"`
	AlternateNameTemplates []string `json:"alternateNameTemplates" yaml:"alternateNameTemplates" validate:"dive,required"`

	AutomaticUpdates    string `json:"automaticUpdates" yaml:"automaticUpdates" validate:"oneof=always never"`
	Autostart           bool   `json:"autostart" yaml:"autostart"`
	OpenAfterCreate     bool   `json:"openAfterCreate" yaml:"openAfterCreate"`
	EnableDryRunPreview bool   `json:"enableDryRunPreview" yaml:"enableDryRunPreview"`

	TTLMs              int64 `json:"ttlMs" yaml:"ttlMs" validate:"min=0"`
	HistoryLimit       int   `json:"historyLimit" yaml:"historyLimit" validate:"min=0"`
	WaitForAppReadyMs  int64 `json:"waitForAppReadyMs" yaml:"waitForAppReadyMs" validate:"min=0"`
	WaitPollIntervalMs int64 `json:"waitPollIntervalMs" yaml:"waitPollIntervalMs" validate:"min=0"`

	// AppSlug names the workspace app to deep link to when the workspace
	// reports no app URI of its own.
	AppSlug *string `json:"appSlug,omitempty" yaml:"appSlug,omitempty"`

	RichParams       []RichParam       `json:"richParams" yaml:"richParams" validate:"dive"`
	TemplateMappings []TemplateMapping `json:"templateMappings" yaml:"templateMappings" validate:"dive"`

	// Auth and cross-origin helpers for the browser client
	RetryAuthWithQueryParam  bool   `json:"retryAuthWithQueryParam" yaml:"retryAuthWithQueryParam"`
	APIKeyQueryParamName     string `json:"apiKeyQueryParamName" yaml:"apiKeyQueryParamName" validate:"required"`
	AppendTokenToAppURL      bool   `json:"appendTokenToAppUrl" yaml:"appendTokenToAppUrl"`
	NavigateInSameTabOnBlock bool   `json:"navigateInSameTabOnBlock" yaml:"navigateInSameTabOnBlock"`

	EnableCloneRepository bool `json:"enableCloneRepository" yaml:"enableCloneRepository"`
}

// RichParam maps a template rich parameter name to a field of the change
// context (repo, branch, change, patchset, url, ...).
type RichParam struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	From string `json:"from" yaml:"from" validate:"required,rich_param_source"`
}

// TemplateMapping selects a template (and optionally parameter and naming
// overrides) for changes whose repo and branch match the given globs.
//
// RichParams is nil when the mapping does not override parameters; an
// explicitly empty list overrides them with nothing. The two serialize
// differently (omitted vs []).
type TemplateMapping struct {
	Repo                    *string     `json:"repo,omitempty" yaml:"repo,omitempty"`
	Branch                  *string     `json:"branch,omitempty" yaml:"branch,omitempty"`
	TemplateID              *string     `json:"templateId,omitempty" yaml:"templateId,omitempty"`
	TemplateVersionID       *string     `json:"templateVersionId,omitempty" yaml:"templateVersionId,omitempty"`
	TemplateVersionPresetID *string     `json:"templateVersionPresetId,omitempty" yaml:"templateVersionPresetId,omitempty"`
	WorkspaceNameTemplate   *string     `json:"workspaceNameTemplate,omitempty" yaml:"workspaceNameTemplate,omitempty"`
	RichParams              []RichParam `json:"richParams,omitzero" yaml:"richParams,omitempty" validate:"omitempty,dive"`
}

// KeyValueConfig is the read-only typed view of the raw plugin configuration.
// Implementations must be safe for concurrent reads.
type KeyValueConfig interface {
	// GetString returns the raw value and whether the key is set.
	GetString(key string) (string, bool)
	GetStringDefault(key, def string) string
	GetBool(key string, def bool) bool
	GetLong(key string, def int64) int64
	GetInt(key string, def int) int
}
