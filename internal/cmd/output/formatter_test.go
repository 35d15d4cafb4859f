package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string `json:"name" yaml:"name"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Hidden    string `json:"-" yaml:"-"`
	Plain     int
	internal  string
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: " table ", want: FormatTable},
		{in: "", want: ""},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sample{Name: "InduSign API", GoVersion: "go1.24"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "InduSign API", decoded["name"])
	assert.Equal(t, "go1.24", decoded["go_version"])
	assert.NotContains(t, decoded, "Hidden")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, sample{Name: "InduSign API"}))

	var decoded sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "InduSign API", decoded.Name)
}

func TestProperties(t *testing.T) {
	data, ok := Properties(&sample{Name: "InduSign API", GoVersion: "go1.24", Hidden: "x", Plain: 3, internal: "skip"})
	require.True(t, ok)

	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Equal(t, [][]string{
		{"Name", "InduSign API"},
		{"Go Version", "go1.24"},
		{"Plain", "3"},
	}, data.Rows)

	_, ok = Properties([]string{"a"})
	assert.False(t, ok)

	var nilSample *sample
	_, ok = Properties(nilSample)
	assert.False(t, ok)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sample{Name: "InduSign API", GoVersion: "go1.24"}))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "PROPERTY")
	assert.Contains(t, out, "InduSign API")
	assert.Contains(t, out, "go1.24")
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]string{"status": "healthy"}))
	assert.JSONEq(t, `{"status":"healthy"}`, buf.String())
}
