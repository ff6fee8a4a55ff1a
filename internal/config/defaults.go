package config

// Keys read from the plugin configuration section.
const (
	KeyServerURL                  = "serverUrl"
	KeyAPIKey                     = "apiKey"
	KeyOrganization               = "organization"
	KeyUser                       = "user"
	KeyTemplateID                 = "templateId"
	KeyTemplateVersionID          = "templateVersionId"
	KeyTemplateVersionPresetID    = "templateVersionPresetId"
	KeyWorkspaceNameTemplate      = "workspaceNameTemplate"
	KeyAlternateNameTemplates     = "alternateNameTemplates"
	KeyAlternateNameTemplatesJSON = "alternateNameTemplatesJson"
	KeyAutomaticUpdates           = "automaticUpdates"
	KeyAutostart                  = "autostart"
	KeyOpenAfterCreate            = "openAfterCreate"
	KeyEnableDryRunPreview        = "enableDryRunPreview"
	KeyTTLMs                      = "ttlMs"
	KeyHistoryLimit               = "historyLimit"
	KeyAppSlug                    = "appSlug"
	KeyWaitForAppReadyMs          = "waitForAppReadyMs"
	KeyWaitPollIntervalMs         = "waitPollIntervalMs"
	KeyRichParams                 = "richParams"
	KeyRichParamsJSON             = "richParamsJson"
	KeyTemplateMappingsJSON       = "templateMappingsJson"
	KeyRetryAuthWithQueryParam    = "retryAuthWithQueryParam"
	KeyAPIKeyQueryParamName       = "apiKeyQueryParamName"
	KeyAppendTokenToAppURL        = "appendTokenToAppUrl"
	KeyNavigateInSameTabOnBlock   = "navigateInSameTabOnBlock"
	KeyEnableCloneRepository      = "enableCloneRepository"
)

// Default values for scalar settings.
const (
	DefaultUser                  = "me"
	DefaultWorkspaceNameTemplate = "{repo}-{change}-{patchset}"
	DefaultAutomaticUpdates      = "always"
	DefaultHistoryLimit          = 10
	DefaultWaitPollIntervalMs    = 1000
	DefaultAPIKeyQueryParamName  = "coder_session_token"
)

// Rich parameters that only make sense when the workspace clones the
// repository under review.
const (
	ParamGitSSHURL = "GERRIT_GIT_SSH_URL"
	ParamChangeRef = "GERRIT_CHANGE_REF"
)

// KnownKeys lists every key the resolver reads, in resolution order.
var KnownKeys = []string{
	KeyServerURL, KeyAPIKey, KeyOrganization, KeyUser,
	KeyTemplateID, KeyTemplateVersionID, KeyTemplateVersionPresetID,
	KeyWorkspaceNameTemplate, KeyAutomaticUpdates, KeyAutostart,
	KeyOpenAfterCreate, KeyEnableDryRunPreview, KeyTTLMs, KeyHistoryLimit,
	KeyAppSlug, KeyAlternateNameTemplatesJSON, KeyAlternateNameTemplates,
	KeyWaitForAppReadyMs, KeyWaitPollIntervalMs,
	KeyRichParamsJSON, KeyRichParams, KeyTemplateMappingsJSON,
	KeyRetryAuthWithQueryParam, KeyAPIKeyQueryParamName,
	KeyAppendTokenToAppURL, KeyNavigateInSameTabOnBlock,
	KeyEnableCloneRepository,
}

// DefaultRichParams returns a newly allocated copy of the built-in rich
// parameter list. Callers may mutate the result freely.
func DefaultRichParams() []RichParam {
	return []RichParam{
		{Name: "REPO", From: "repo"},
		{Name: "BRANCH", From: "branch"},
		{Name: "GERRIT_CHANGE", From: "change"},
		{Name: "GERRIT_PATCHSET", From: "patchset"},
		{Name: "GERRIT_CHANGE_URL", From: "url"},
		{Name: ParamGitSSHURL, From: "gitSshUrl"},
		{Name: ParamChangeRef, From: "changeRef"},
	}
}

// NewConfiguration returns a Configuration holding the built-in defaults.
// Every call allocates its own lists.
func NewConfiguration() *Configuration {
	return &Configuration{
		User:                     DefaultUser,
		WorkspaceNameTemplate:    DefaultWorkspaceNameTemplate,
		AlternateNameTemplates:   []string{},
		AutomaticUpdates:         DefaultAutomaticUpdates,
		Autostart:                true,
		OpenAfterCreate:          true,
		HistoryLimit:             DefaultHistoryLimit,
		WaitPollIntervalMs:       DefaultWaitPollIntervalMs,
		RichParams:               DefaultRichParams(),
		TemplateMappings:         []TemplateMapping{},
		RetryAuthWithQueryParam:  true,
		APIKeyQueryParamName:     DefaultAPIKeyQueryParamName,
		NavigateInSameTabOnBlock: true,
	}
}
