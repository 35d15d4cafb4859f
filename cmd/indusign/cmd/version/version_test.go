package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indusign/indusign/internal/cmd/application"
	"github.com/indusign/indusign/pkg/service"
)

func newMock() *application.Mock {
	return &application.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
		DateFunc:    func() string { return "2025-01-01" },
	}
}

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), err
}

func TestCollect(t *testing.T) {
	meta := service.Metadata{Name: "Staging API", Version: "0.9.0", ServiceID: "indusign-staging"}
	mock := newMock()
	mock.MetadataFunc = func() service.Metadata { return meta }

	info := Collect(mock)
	assert.Equal(t, "Staging API", info.Name)
	assert.Equal(t, "indusign-staging", info.ServiceID)
	assert.Equal(t, "0.9.0", info.APIVersion)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2025-01-01", info.Date)
	assert.Equal(t, "test", info.BuiltBy)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := run(t, newMock(), "--format", "json")
	require.NoError(t, err)

	var info Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "InduSign API", info.Name)
	assert.Equal(t, "indusign-backend", info.ServiceID)
	assert.Equal(t, "1.0.0", info.APIVersion)
	assert.Equal(t, "1.2.3", info.Version)
}

func TestVersionCommand_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "yaml", want: "service_id: indusign-backend"},
		{format: "table", want: "Go Version"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := run(t, newMock(), "-o", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestVersionCommand_Errors(t *testing.T) {
	_, err := run(t, newMock(), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = run(t, newMock(), "extra")
	assert.Error(t, err)
}
