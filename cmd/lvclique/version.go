// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

// Set at link time: -ldflags "-X main.buildVersion=v1.2.3 -X main.buildCommit=abc123".
var (
	buildVersion = "dev"
	buildCommit  = "none"
)

// newVersionCommand returns the command that prints the build version.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvclique version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("lvclique %s (commit %s)\n", buildVersion, buildCommit)
			return nil
		},
	}
}
