package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRichParamList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []RichParam
		dropped int
	}{
		{"single", "REPO:repo", []RichParam{{"REPO", "repo"}}, 0},
		{"value keeps inner colons", "URL:a:b", []RichParam{{"URL", "a:b"}}, 0},
		{"missing separator", "REPO", nil, 1},
		{"missing name", ":repo", nil, 1},
		{"missing value", "REPO:", nil, 1},
		{"blank name after trim", "  :repo", nil, 1},
		{"blank value after trim", "REPO:  ", nil, 1},
		{"empty tokens skipped", "A:1,,B:2,", []RichParam{{"A", "1"}, {"B", "2"}}, 0},
		{"mixed", "A:1,bad,B:2", []RichParam{{"A", "1"}, {"B", "2"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := ParseRichParamList(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dropped, dropped)
		})
	}
}

func TestParseRichParamArray(t *testing.T) {
	got, err := ParseRichParamArray(`[{"name":" A ","from":"repo"},null,{"name":"B"},{"name":"C","from":"branch","extra":1}]`)
	require.NoError(t, err)
	assert.Equal(t, []RichParam{{"A", "repo"}, {"C", "branch"}}, got)

	_, err = ParseRichParamArray(`{"name":"A"}`)
	assert.Error(t, err)
}

func TestParseTemplateMappings(t *testing.T) {
	got, err := ParseTemplateMappings(`[null, {"repo":"a","unknown":true,"richParams":[null,{"name":"X","from":""}]}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", *got[0].Repo)
	assert.NotNil(t, got[0].RichParams)
	assert.Empty(t, got[0].RichParams)

	got, err = ParseTemplateMappings(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = ParseTemplateMappings(`[{"repo": 5}]`)
	assert.Error(t, err)
}

func TestParseTemplateMappings_FieldNamesMatchExactly(t *testing.T) {
	got, err := ParseTemplateMappings(`[{"REPO":"caps","TemplateId":"x","repo":"team/*","RichParams":[],"richParams":[{"NAME":"A","from":"repo"},{"name":"B","from":"branch"}]}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)

	m := got[0]
	require.NotNil(t, m.Repo)
	assert.Equal(t, "team/*", *m.Repo)
	assert.Nil(t, m.TemplateID)
	assert.Equal(t, []RichParam{{Name: "B", From: "branch"}}, m.RichParams)

	got, err = ParseTemplateMappings(`[{"Repo":"caps","RichParams":[{"name":"A","from":"repo"}]}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Repo)
	assert.Nil(t, got[0].RichParams)
}

func TestParseRichParamArray_FieldNamesMatchExactly(t *testing.T) {
	got, err := ParseRichParamArray(`[{"Name":"A","From":"repo"},{"name":"B","from":"branch"}]`)
	require.NoError(t, err)
	assert.Equal(t, []RichParam{{Name: "B", From: "branch"}}, got)
}

func TestParseStringArray(t *testing.T) {
	got, err := ParseStringArray(`[" a ", "", null, "b"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = ParseStringArray(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = ParseStringArray(`"a"`)
	assert.Error(t, err)
}

func TestParseStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseStringList(" a ,, b ,"))
	assert.Equal(t, []string{}, ParseStringList(""))
}
