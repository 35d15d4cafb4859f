// Package version provides the version command for the indusign CLI.
package version

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/indusign/indusign/internal/cmd/application"
	"github.com/indusign/indusign/internal/cmd/output"
)

// Info describes the running binary and the API it serves.
type Info struct {
	Name       string `json:"name" yaml:"name"`
	ServiceID  string `json:"service_id" yaml:"service_id"`
	APIVersion string `json:"api_version" yaml:"api_version"`
	Version    string `json:"version" yaml:"version"`
	Commit     string `json:"commit" yaml:"commit"`
	Date       string `json:"date" yaml:"date"`
	BuiltBy    string `json:"built_by" yaml:"built_by"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
}

// Collect gathers build and service metadata from app.
func Collect(app application.Application) Info {
	meta := app.Metadata()
	return Info{
		Name:       meta.Name,
		ServiceID:  meta.ServiceID,
		APIVersion: meta.Version,
		Version:    app.Version(),
		Commit:     app.Commit(),
		Date:       app.Date(),
		BuiltBy:    app.BuiltBy(),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show build and API version information for the indusign server.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(name)
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(output.DetectFormat(string(format)))
			return formatter.Format(cmd.OutOrStdout(), Collect(app))
		},
	}

	cmd.Flags().StringP("format", "o", "", "output format: table, json, yaml (default table on a terminal, json otherwise)")

	return cmd
}
