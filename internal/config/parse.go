package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseRichParamList parses the delimited form "NAME1:from1,NAME2:from2".
// Tokens are trimmed. Entries without a name, a value, or a ':' separator
// are dropped; the second result counts them. There is no escaping of ','
// or ':'.
func ParseRichParamList(raw string) ([]RichParam, int) {
	var params []RichParam
	dropped := 0
	for _, part := range strings.Split(raw, ",") {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		idx := strings.Index(entry, ":")
		if idx <= 0 || idx >= len(entry)-1 {
			dropped++
			continue
		}
		name := strings.TrimSpace(entry[:idx])
		from := strings.TrimSpace(entry[idx+1:])
		if name == "" || from == "" {
			dropped++
			continue
		}
		params = append(params, RichParam{Name: name, From: from})
	}
	return params, dropped
}

// ParseRichParamArray parses a JSON array of {name, from} objects. Field
// names match exactly. Entries with a blank name or source are dropped.
func ParseRichParamArray(raw string) ([]RichParam, error) {
	var decoded []jsonObject
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	return richParamsFrom(decoded)
}

// ParseTemplateMappings parses the structured array form of templateMappings.
// Unknown fields are ignored and missing fields stay nil. Null array
// elements are skipped. A mapping's richParams list keeps its nil-ness: an
// absent list stays nil and an explicit list stays non-nil even if every
// entry in it is dropped.
func ParseTemplateMappings(raw string) ([]TemplateMapping, error) {
	var decoded []jsonObject
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	mappings := make([]TemplateMapping, 0, len(decoded))
	for _, obj := range decoded {
		if obj == nil {
			continue
		}
		var mapping TemplateMapping
		for field, dst := range map[string]**string{
			"repo":                    &mapping.Repo,
			"branch":                  &mapping.Branch,
			"templateId":              &mapping.TemplateID,
			"templateVersionId":       &mapping.TemplateVersionID,
			"templateVersionPresetId": &mapping.TemplateVersionPresetID,
			"workspaceNameTemplate":   &mapping.WorkspaceNameTemplate,
		} {
			if err := obj.decode(field, dst); err != nil {
				return nil, err
			}
		}

		var params []jsonObject
		if err := obj.decode("richParams", &params); err != nil {
			return nil, err
		}
		if params != nil {
			compacted, err := richParamsFrom(params)
			if err != nil {
				return nil, err
			}
			mapping.RichParams = compacted
		}
		mappings = append(mappings, mapping)
	}
	return mappings, nil
}

// ParseStringArray parses a JSON array of strings, trimming entries and
// dropping blanks and nulls.
func ParseStringArray(raw string) ([]string, error) {
	var decoded []*string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	out := []string{}
	for _, s := range decoded {
		if s == nil {
			continue
		}
		if v := strings.TrimSpace(*s); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// ParseStringList parses a comma-separated list, trimming entries and
// dropping blanks.
func ParseStringList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// jsonObject is one decoded JSON object. Looking fields up by exact name
// avoids the case folding encoding/json applies to struct fields.
type jsonObject map[string]json.RawMessage

// decode unmarshals field into v when present; an absent field leaves v
// untouched.
func (o jsonObject) decode(field string, v any) error {
	raw, ok := o[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %s: %w", field, err)
	}
	return nil
}

// richParamsFrom trims every entry and keeps only complete ones. Null
// elements are skipped. The result is always non-nil.
func richParamsFrom(objs []jsonObject) ([]RichParam, error) {
	out := make([]RichParam, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		var name, from string
		if err := obj.decode("name", &name); err != nil {
			return nil, err
		}
		if err := obj.decode("from", &from); err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		from = strings.TrimSpace(from)
		if name == "" || from == "" {
			continue
		}
		out = append(out, RichParam{Name: name, From: from})
	}
	return out, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
