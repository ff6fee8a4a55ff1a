package config

// isCloneParam reports whether name is tied to repository cloning metadata.
func isCloneParam(name string) bool {
	return name == ParamGitSSHURL || name == ParamChangeRef
}

// removeCloneParams strips the clone-related rich parameters from the
// top-level list and from every mapping that overrides its own list.
// Mappings without an override keep a nil list.
func removeCloneParams(cfg *Configuration) {
	cfg.RichParams = withoutCloneParams(cfg.RichParams)
	for i := range cfg.TemplateMappings {
		if cfg.TemplateMappings[i].RichParams != nil {
			cfg.TemplateMappings[i].RichParams = withoutCloneParams(cfg.TemplateMappings[i].RichParams)
		}
	}
}

// withoutCloneParams filters params in place, preserving order. A non-nil
// input yields a non-nil result.
func withoutCloneParams(params []RichParam) []RichParam {
	kept := params[:0]
	for _, p := range params {
		if !isCloneParam(p.Name) {
			kept = append(kept, p)
		}
	}
	return kept
}
